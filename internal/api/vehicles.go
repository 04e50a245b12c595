package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Vehicles lists the vehicles visible to the current user. The backend scopes
// the result by role: drivers see their assigned vehicle, owners their fleet,
// admins everything.
func (c *Client) Vehicles(ctx context.Context) ([]Vehicle, error) {
	var vehicles []Vehicle
	if err := c.doJSON(ctx, http.MethodGet, "/api/vehicle", nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// VehicleByID fetches a single vehicle.
func (c *Client) VehicleByID(ctx context.Context, id string) (*Vehicle, error) {
	var vehicle Vehicle
	if err := c.doJSON(ctx, http.MethodGet, "/api/vehicle/"+url.PathEscape(id), nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// CreateVehicle registers a new vehicle.
func (c *Client) CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*Vehicle, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid vehicle request: %w", err)
	}

	var vehicle Vehicle
	if err := c.doJSON(ctx, http.MethodPost, "/api/vehicle", req, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// DriverProgress returns contract progress from the driver's perspective.
func (c *Client) DriverProgress(ctx context.Context, vehicleID string) (*ContractProgress, error) {
	return c.progress(ctx, vehicleID, "driver")
}

// OwnerProgress returns contract progress from the owner's perspective.
func (c *Client) OwnerProgress(ctx context.Context, vehicleID string) (*ContractProgress, error) {
	return c.progress(ctx, vehicleID, "owner")
}

func (c *Client) progress(ctx context.Context, vehicleID, side string) (*ContractProgress, error) {
	var progress ContractProgress
	path := "/api/vehicle/" + url.PathEscape(vehicleID) + "/progress/" + side
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// CreateContract starts a hire-purchase contract. The payment splitting and
// schedule math are owned by the backend.
func (c *Client) CreateContract(ctx context.Context, req CreateContractRequest) error {
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid contract request: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, "/api/contract", req, nil)
}
