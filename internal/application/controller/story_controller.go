package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-story/internal/domain/model"
	"weather-story/internal/domain/usecase/story"
)

type StoryController struct {
	api         *echo.Group
	contextPath string
	useCase     story.UseCase
}

func NewStoryController(api *echo.Group, contextPath string, useCase story.UseCase) *StoryController {
	return &StoryController{api: api, contextPath: contextPath, useCase: useCase}
}

// InitStoryRoutes initializes the JSON story routes
func (controller *StoryController) InitStoryRoutes() {
	controller.api.GET("/api/cities", controller.FindCities)
	controller.api.POST("/api/stories", controller.GenerateStory)
	controller.api.GET("/api/stories/:id", controller.FindStory)
	controller.api.POST("/api/stories/:id/post", controller.PostStory)
}

// FindCities godoc
// @Summary List selectable cities
// @Description Returns the fixed list of cities a story can be generated for
// @Tags stories
// @Produce json
// @Success 200 {object} model.CitiesResponse "Selectable cities"
// @Router /api/cities [get]
func (controller *StoryController) FindCities(c echo.Context) error {
	return c.JSON(http.StatusOK, model.CitiesResponse{
		Country: controller.useCase.Country(),
		Cities:  controller.useCase.Cities(),
	})
}

// GenerateStory godoc
// @Summary Generate a weather story
// @Description Fetches current weather, writes a caption of at most 280 characters and fetches a matching image. An image failure is reported in imageError and does not fail the request.
// @Tags stories
// @Accept json
// @Produce json
// @Param request body model.GenerateStoryDTO true "City to generate the story for"
// @Success 201 {object} model.StoryResponse "Generated story"
// @Failure 400 {object} model.ErrorResponse "Unknown city or invalid body"
// @Failure 502 {object} model.ErrorResponse "Provider rejected the request"
// @Failure 503 {object} model.ErrorResponse "Required API keys are missing"
// @Failure 504 {object} model.ErrorResponse "Provider unreachable"
// @Router /api/stories [post]
func (controller *StoryController) GenerateStory(c echo.Context) error {
	var dto model.GenerateStoryDTO
	if err := c.Bind(&dto); err != nil {
		return writeError(c, bindError(err))
	}
	if err := c.Validate(&dto); err != nil {
		return writeError(c, err)
	}

	gen, err := controller.useCase.Generate(c.Request().Context(), dto.City)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, model.NewStoryResponse(gen, imageURL(controller.contextPath, gen.ID)))
}

// FindStory godoc
// @Summary Get a generated story
// @Tags stories
// @Produce json
// @Param id path string true "Story id"
// @Success 200 {object} model.StoryResponse "Stored story"
// @Failure 404 {object} model.ErrorResponse "Story not found or expired"
// @Router /api/stories/{id} [get]
func (controller *StoryController) FindStory(c echo.Context) error {
	gen, err := controller.useCase.FindGeneration(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewStoryResponse(gen, imageURL(controller.contextPath, gen.ID)))
}

// PostStory godoc
// @Summary Post a story to the social platform
// @Description Publishes the caption, with the image when it is still available. Requires posting to be enabled and optIn to be true.
// @Tags stories
// @Accept json
// @Produce json
// @Param id path string true "Story id"
// @Param request body model.PostStoryDTO true "Explicit opt-in"
// @Success 201 {object} entity.PostResult "Published post"
// @Failure 400 {object} model.ErrorResponse "Opt-in missing"
// @Failure 404 {object} model.ErrorResponse "Story not found or expired"
// @Failure 502 {object} model.ErrorResponse "Platform rejected the request"
// @Failure 503 {object} model.ErrorResponse "Posting disabled or credentials missing"
// @Router /api/stories/{id}/post [post]
func (controller *StoryController) PostStory(c echo.Context) error {
	var dto model.PostStoryDTO
	if err := c.Bind(&dto); err != nil {
		return writeError(c, bindError(err))
	}

	result, err := controller.useCase.Post(c.Request().Context(), c.Param("id"), dto.OptIn)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

func imageURL(contextPath string, id string) string {
	return contextPath + "/image/" + id
}
