package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"brewer-backend/internal/model"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/store"
)

// readContext is a throwaway store context for a single read-only request.
func (h *Handler) readContext() *store.Context {
	return store.NewContext(h.db, model.InsertOrder...)
}

// GetBrews handles the GET /api/brews request.
func (h *Handler) GetBrews(c *gin.Context) {
	brews, err := modelcontroller.NewBrewModelController(h.readContext()).Brews(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	rows := make([]screen.BrewSummary, 0, len(brews))
	for _, b := range brews {
		rows = append(rows, screen.Summarize(b))
	}
	c.JSON(http.StatusOK, rows)
}

// GetBrew handles the GET /api/brews/:id request.
func (h *Handler) GetBrew(c *gin.Context) {
	id := c.Param("id")
	brew, err := modelcontroller.NewBrewModelController(h.readContext()).LoadBrew(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if brew.Temporary {
		h.fail(c, fmt.Errorf("%w: %s", modelcontroller.ErrBrewNotFound, id))
		return
	}
	c.JSON(http.StatusOK, brew)
}

// GetCoffees handles the GET /api/coffees request.
func (h *Handler) GetCoffees(c *gin.Context) {
	coffees, err := store.NewOperations[model.Coffee](h.readContext()).Fetch(c.Request.Context(), store.FetchRequest{
		SortDescriptors: []store.SortDescriptor{store.Ascending("name")},
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, coffees)
}

// GetCoffeeMachines handles the GET /api/coffee-machines request.
func (h *Handler) GetCoffeeMachines(c *gin.Context) {
	machines, err := store.NewOperations[model.CoffeeMachine](h.readContext()).Fetch(c.Request.Context(), store.FetchRequest{
		SortDescriptors: []store.SortDescriptor{store.Ascending("name")},
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, machines)
}
