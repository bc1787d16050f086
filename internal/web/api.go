package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/folio/internal/auth"
	"github.com/Zachkp/folio/internal/dto"
)

type ownedStore[T any] interface {
	ListByOwner(ctx context.Context, owner string) ([]T, error)
	GetByID(ctx context.Context, owner string, id uuid.UUID) (*T, error)
	Insert(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, owner string, id uuid.UUID) error
}

// resource exposes one owner-scoped record type as JSON CRUD.
type resource[T any] struct {
	store ownedStore[T]
	// stamps the caller and, on update, the path id onto a decoded body
	own func(rec *T, owner string, id uuid.UUID)
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

func (s *Server) mountAPI(g *gin.RouterGroup) {
	experience := resource[dto.Experience]{
		store: s.deps.Experience,
		own: func(rec *dto.Experience, owner string, id uuid.UUID) {
			rec.Owner, rec.ID = owner, id
		},
	}
	education := resource[dto.Education]{
		store: s.deps.Education,
		own: func(rec *dto.Education, owner string, id uuid.UUID) {
			rec.Owner, rec.ID = owner, id
		},
	}

	experience.mount(g.Group("/experience"))
	education.mount(g.Group("/education"))
}

func (r resource[T]) mount(g *gin.RouterGroup) {
	g.GET("", r.list)
	g.POST("", r.create)
	g.PUT("/:id", r.update)
	g.DELETE("/:id", r.remove)
}

func caller(c *gin.Context) string {
	id, _ := auth.FromContext(c)
	return id.UserID
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_ID", "invalid id "+c.Param("id"))
		return uuid.Nil, false
	}
	return id, true
}

func (r resource[T]) list(c *gin.Context) {
	rows, err := r.store.ListByOwner(c.Request.Context(), caller(c))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[T]{Items: rows})
}

func (r resource[T]) create(c *gin.Context) {
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	r.own(&rec, caller(c), uuid.Nil)

	created, err := r.store.Insert(c.Request.Context(), rec)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r resource[T]) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	owner := caller(c)
	r.own(&rec, owner, id)

	if err := r.store.Update(c.Request.Context(), rec); err != nil {
		storeError(c, err)
		return
	}

	stored, err := r.store.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (r resource[T]) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := r.store.Delete(c.Request.Context(), caller(c), id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
