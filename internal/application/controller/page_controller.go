package controller

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-story/internal/application/view"
	"weather-story/internal/domain/model"
	"weather-story/internal/domain/usecase/story"
	"weather-story/pkg/log"
	"weather-story/pkg/msg"
)

const (
	sessionName     = "weather_story"
	generationKey   = "generation_id"
	cityKey         = "city"
	flashSuccessKey = "success"
	flashErrorKey   = "error"
)

// PageController serves the single-page form. The current generation id lives in a cookie session.
type PageController struct {
	api         *echo.Group
	contextPath string
	useCase     story.UseCase
}

func NewPageController(api *echo.Group, contextPath string, useCase story.UseCase) *PageController {
	return &PageController{api: api, contextPath: contextPath, useCase: useCase}
}

// InitPageRoutes initializes the form routes
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("", controller.Index)
	controller.api.GET("/", controller.Index)
	controller.api.POST("/generate", controller.Generate)
	controller.api.POST("/post", controller.Post)
	controller.api.GET("/image/:id", controller.Image)
}

// NewSessionStore creates the cookie store backing the form session
func NewSessionStore(secret []byte, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 12,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return store
}

func (controller *PageController) Index(c echo.Context) error {
	page := view.IndexPage{
		ContextPath:              controller.contextPath,
		Country:                  controller.useCase.Country(),
		Cities:                   controller.useCase.Cities(),
		MissingSecrets:           controller.useCase.MissingSecrets(),
		PostingEnabled:           controller.useCase.Capabilities().Posting,
		MissingSocialCredentials: controller.useCase.MissingSocialCredentials(),
	}

	sess, err := session.Get(sessionName, c)
	if err != nil {
		return controller.render(c, page)
	}

	for _, flash := range sess.Flashes(flashErrorKey) {
		page.Flashes = append(page.Flashes, view.Flash{Kind: "error", Message: flash.(string)})
	}
	for _, flash := range sess.Flashes(flashSuccessKey) {
		page.Flashes = append(page.Flashes, view.Flash{Kind: "success", Message: flash.(string)})
	}
	if city, ok := sess.Values[cityKey].(string); ok {
		page.SelectedCity = city
	}

	if id, ok := sess.Values[generationKey].(string); ok {
		gen, err := controller.useCase.FindGeneration(c.Request().Context(), id)
		if err == nil {
			page.Generation = gen
			page.ImageURL = imageURL(controller.contextPath, gen.ID)
		} else {
			delete(sess.Values, generationKey)
		}
	}

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Warn(err.Error(), zap.String("session", sessionName))
	}
	return controller.render(c, page)
}

func (controller *PageController) Generate(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}

	var dto model.GenerateStoryDTO
	err = c.Bind(&dto)
	if err != nil {
		err = bindError(err)
	} else {
		err = c.Validate(&dto)
	}

	if err == nil {
		sess.Values[cityKey] = dto.City
		gen, genErr := controller.useCase.Generate(c.Request().Context(), dto.City)
		if genErr == nil {
			sess.Values[generationKey] = gen.ID
			sess.AddFlash(msg.GetMessage("story.ui.generated", gen.Weather.City, gen.Weather.LocalTime), flashSuccessKey)
		}
		err = genErr
	}

	if err != nil {
		sess.AddFlash(msg.GetMessage("story.ui.failed", err.Error()), flashErrorKey)
	}
	return controller.redirect(c, sess)
}

func (controller *PageController) Post(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}

	var dto model.PostStoryDTO
	if err := c.Bind(&dto); err != nil {
		sess.AddFlash(msg.GetMessage("story.ui.failed", bindError(err).Error()), flashErrorKey)
		return controller.redirect(c, sess)
	}

	id, _ := sess.Values[generationKey].(string)
	result, err := controller.useCase.Post(c.Request().Context(), id, dto.OptIn)
	if err != nil {
		sess.AddFlash(msg.GetMessage("story.ui.failed", err.Error()), flashErrorKey)
	} else {
		sess.AddFlash(msg.GetMessage("story.ui.posted", result.URL), flashSuccessKey)
	}
	return controller.redirect(c, sess)
}

func (controller *PageController) Image(c echo.Context) error {
	data, contentType, err := controller.useCase.ImageData(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, contentType, data)
}

func (controller *PageController) render(c echo.Context, page view.IndexPage) error {
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Render(http.StatusOK, "index.html", page)
}

func (controller *PageController) redirect(c echo.Context, sess *sessions.Session) error {
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, controller.contextPath+"/")
}
