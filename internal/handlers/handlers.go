// Package handlers is the HTTP surface. Every life-tracking handler follows
// the same pattern: resolve the caller's store, apply the mutation, return
// the post-mutation state. Persistence happens behind the store, so a 200
// here means the in-memory state changed, not that the row landed.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/auth"
	"github.com/lifeos-app/lifeos-backend/internal/dto"
	"github.com/lifeos-app/lifeos-backend/internal/state"
)

// storeFor resolves the authenticated user's store, loading it on first
// access. On failure it writes the error response and returns nil.
func storeFor(c *fiber.Ctx, manager *state.Manager) *state.Store {
	userID, err := auth.GetUserID(c)
	if err != nil {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
		return nil
	}

	store, err := manager.Get(c.Context(), userID.String())
	if err != nil {
		_ = c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load user data",
		})
		return nil
	}
	return store
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}
