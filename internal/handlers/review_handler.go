package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/cache"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
	ucreview "github.com/BruksfildServices01/barbershop-booking/internal/usecase/review"
)

type ReviewHandler struct {
	create *ucreview.CreateReview
	delete *ucreview.DeleteReview
	list   *ucreview.ListReviews
	cache  cache.Cache
}

func NewReviewHandler(repo review.Repository, publisher notify.Publisher, c cache.Cache) *ReviewHandler {
	return &ReviewHandler{
		create: ucreview.NewCreateReview(repo, publisher),
		delete: ucreview.NewDeleteReview(repo),
		list:   ucreview.NewListReviews(repo),
		cache:  c,
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.list.All(c.Request.Context(), review.Filter{
		BarberID: queryUint(c, "barber_id"),
		Limit:    int(queryUint(c, "limit")),
	})
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data review")
		return
	}
	httpresp.OK(c, nonNil(reviews))
}

func (h *ReviewHandler) Top(c *gin.Context) {
	reviews, err := h.list.Top(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan review")
		return
	}
	httpresp.OK(c, nonNil(reviews))
}

func (h *ReviewHandler) ForBarber(c *gin.Context) {
	barberID, err := paramID(c, "barberId")
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	out, err := h.list.ForBarber(c.Request.Context(), barberID)
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan review barber")
		return
	}
	out.Reviews = nonNil(out.Reviews)
	httpresp.OK(c, out)
}

func (h *ReviewHandler) CheckBooking(c *gin.Context) {
	bookingID, err := paramID(c, "bookingId")
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	has, err := h.list.HasReview(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Respond(c, err, "Gagal memeriksa review")
		return
	}
	httpresp.OK(c, gin.H{"hasReview": has})
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	rv, err := h.create.Execute(c.Request.Context(), req.Normalize(userID))
	if err != nil {
		httperr.Respond(c, err, "Gagal menambahkan review")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixBarbers)
	httpresp.Created(c, "Review berhasil ditambahkan", rv)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, "Gagal menghapus review")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixBarbers)
	httpresp.Message(c, "Review berhasil dihapus")
}
