package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"voucher-management/internal/domain"
)

type VoucherHandler struct {
	repo domain.VoucherRepository
}

func NewVoucherHandler(r domain.VoucherRepository) *VoucherHandler {
	return &VoucherHandler{repo: r}
}

func (h *VoucherHandler) Priority() int { return 20 }

func (h *VoucherHandler) MountAPI(g *gin.RouterGroup) {
	g.GET("/vouchers", h.list)
	g.GET("/vouchers/:id", h.get)
	g.POST("/vouchers", h.create)
}

type createVoucherIn struct {
	Name           string  `json:"name"           binding:"required,max=255"`
	DiscountAmount float64 `json:"discountAmount" binding:"required,gt=0"`
	Type           string  `json:"type"           binding:"required"`
}

type voucherOut struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	DiscountAmount float64    `json:"discountAmount"`
	Type           string     `json:"type"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

func toVoucherOut(v domain.Voucher) voucherOut {
	out := voucherOut{
		ID:             v.ID().String(),
		Name:           v.Name(),
		DiscountAmount: v.DiscountAmount(),
		Type:           v.Type().String(),
	}
	if ts := v.CreatedAt(); !ts.IsZero() {
		out.CreatedAt = &ts
	}
	return out
}

func (h *VoucherHandler) list(c *gin.Context) {
	vs, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]voucherOut, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVoucherOut(v))
	}
	ok(c, out)
}

func (h *VoucherHandler) get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	v, found, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		notFound(c, "voucher not found")
		return
	}
	ok(c, toVoucherOut(v))
}

func (h *VoucherHandler) create(c *gin.Context) {
	var in createVoucherIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	name, valid := nameOf(c, in.Name)
	if !valid {
		return
	}
	v, err := domain.NewVoucher(name, in.DiscountAmount, in.Type)
	if err != nil {
		fail(c, err)
		return
	}
	if v.Type() == domain.VoucherTypePercent && in.DiscountAmount > 100 {
		badRequest(c, "percent discount must not exceed 100")
		return
	}
	saved, err := h.repo.Save(c.Request.Context(), v)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, toVoucherOut(saved))
}
