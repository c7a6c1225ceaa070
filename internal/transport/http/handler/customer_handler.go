package handler

import (
	"github.com/gin-gonic/gin"

	"voucher-management/internal/domain"
)

type CustomerHandler struct {
	repo domain.CustomerRepository
}

func NewCustomerHandler(r domain.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: r}
}

func (h *CustomerHandler) Priority() int { return 10 }

func (h *CustomerHandler) MountAPI(g *gin.RouterGroup) {
	g.GET("/customers", h.list)
	g.GET("/customers/banned", h.banned)
	g.GET("/customers/:id", h.get)
	g.POST("/customers", h.create)
	g.PUT("/customers/:id", h.update)
	g.DELETE("/customers/:id", h.delete)
}

type createCustomerIn struct {
	Name string `json:"name" binding:"required,max=255"`
}

type updateCustomerIn struct {
	Name   string `json:"name"   binding:"required,max=255"`
	Banned bool   `json:"banned"`
}

func (h *CustomerHandler) list(c *gin.Context) {
	var (
		out []domain.Customer
		err error
	)
	if name, has := c.GetQuery("name"); has {
		out, err = h.repo.FindByName(c.Request.Context(), name)
	} else {
		out, err = h.repo.FindAll(c.Request.Context())
	}
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (h *CustomerHandler) banned(c *gin.Context) {
	out, err := h.repo.FindBannedCustomers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (h *CustomerHandler) get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	cu, found, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		notFound(c, "customer not found")
		return
	}
	ok(c, cu)
}

func (h *CustomerHandler) create(c *gin.Context) {
	var in createCustomerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	name, valid := nameOf(c, in.Name)
	if !valid {
		return
	}
	saved, err := h.repo.Save(c.Request.Context(), domain.NewCustomer(name))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, saved)
}

// update replaces name and banned flag; id and createdAt are kept.
func (h *CustomerHandler) update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var in updateCustomerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	name, valid := nameOf(c, in.Name)
	if !valid {
		return
	}
	cur, found, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		notFound(c, "customer not found")
		return
	}
	cur.Name = name
	cur.Banned = in.Banned
	updated, err := h.repo.Update(c.Request.Context(), cur)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, updated)
}

func (h *CustomerHandler) delete(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"id": id})
}
