package handler

import (
	"net/http"

	domainerrors "wlsd/internal/domain/errors"
	"wlsd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

// ViewPage displays a single post.
func (h *PostHandler) ViewPage(c echo.Context) error {
	post, err := h.uc.GetPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "post.html", map[string]any{
		"Post": post,
	})
}

// CreatePage displays the form to create a new post.
func (h *PostHandler) CreatePage(c echo.Context) error {
	return c.Render(http.StatusOK, "post-create.html", nil)
}

// CreateForm processes the form and creates a new post.
func (h *PostHandler) CreateForm(c echo.Context) error {
	var input usecase.PostInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	post, err := h.uc.CreatePost(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, "/p/"+post.Slug)
}
