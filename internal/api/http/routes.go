package httpapi

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-lookup/internal/suggest"
	"github.com/i474232898/weather-lookup/internal/view"
	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, engine *suggest.Engine, state *view.State) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/search", func(c *fiber.Ctx) error {
		q := searchQuery{City: c.Query("city")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := service.Search(c.UserContext(), q.City); err != nil {
			return cycleError(err)
		}
		return c.JSON(state.View())
	})

	v1.Get("/weather/coordinates", func(c *fiber.Ctx) error {
		q, err := parseCoordinatesQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := service.SearchCoordinates(c.UserContext(), q.Lat, q.Lon); err != nil {
			return cycleError(err)
		}
		return c.JSON(state.View())
	})

	v1.Post("/weather/locate", func(c *fiber.Ctx) error {
		if err := service.Locate(c.UserContext()); err != nil {
			return cycleError(err)
		}
		return c.JSON(state.View())
	})

	v1.Post("/weather/select", func(c *fiber.Ctx) error {
		var place weather.Place
		if err := c.BodyParser(&place); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid place: "+err.Error())
		}
		if err := validate.Struct(place); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := service.Select(c.UserContext(), place); err != nil {
			return cycleError(err)
		}
		return c.JSON(state.View())
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		snapshot, ok := service.Current()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no weather displayed yet")
		}
		return c.JSON(view.Format(snapshot, service.Unit()))
	})

	v1.Put("/unit", func(c *fiber.Ctx) error {
		var req unitRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body: "+err.Error())
		}
		unit, err := weather.ParseUnit(req.Unit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		service.SetUnit(unit)
		return c.JSON(state.View())
	})

	v1.Post("/suggestions/input", func(c *fiber.Ctx) error {
		var req inputRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body: "+err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		engine.Input(req.Query)
		return c.SendStatus(fiber.StatusAccepted)
	})

	v1.Get("/suggestions", func(c *fiber.Ctx) error {
		q, err := parseSuggestionsQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		places, err := service.Suggest(c.UserContext(), q.Query, q.Limit)
		if err != nil {
			// Suggestions are an enhancement; a failure is not shown.
			log.Printf("suggestions for %q failed: %v", q.Query, err)
			places = []weather.Place{}
		}
		return c.JSON(fiber.Map{
			"query":       q.Query,
			"suggestions": places,
		})
	})

	v1.Get("/view", func(c *fiber.Ctx) error {
		return c.JSON(state.View())
	})

	v1.Delete("/view/error", func(c *fiber.Ctx) error {
		state.DismissError()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// cycleError maps a failed cycle to a status carrying the user-facing text.
func cycleError(err error) error {
	msg := weather.UserMessage(err)
	switch {
	case errors.Is(err, weather.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, msg)
	case errors.Is(err, weather.ErrLocationUnavailable):
		return fiber.NewError(fiber.StatusUnprocessableEntity, msg)
	case errors.Is(err, weather.ErrFetch), errors.Is(err, weather.ErrIncompleteData):
		return fiber.NewError(fiber.StatusBadGateway, msg)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, msg)
	}
}

type searchQuery struct {
	City string `validate:"required,max=100"`
}

// coordinatesQuery holds the position granted by the client.
type coordinatesQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func parseCoordinatesQuery(c *fiber.Ctx) (coordinatesQuery, error) {
	var q coordinatesQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("invalid lat")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("invalid lon")
	}
	q.Lat = lat
	q.Lon = lon

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

type unitRequest struct {
	Unit string `json:"unit"`
}

type inputRequest struct {
	Query string `json:"query" validate:"max=100"`
}

type suggestionsQuery struct {
	Query string `validate:"max=100"`
	Limit int    `validate:"gte=0,lte=20"`
}

func parseSuggestionsQuery(c *fiber.Ctx) (suggestionsQuery, error) {
	q := suggestionsQuery{Query: c.Query("q")}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return q, errors.New("invalid limit")
		}
		q.Limit = limit
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}
