package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/app/repositories"
	"github.com/shashiranjanraj/ordertrack/app/stats"
	"github.com/shashiranjanraj/ordertrack/pkg/event"
	"github.com/shashiranjanraj/ordertrack/pkg/metrics"
	"github.com/shashiranjanraj/ordertrack/pkg/storage"
)

// ErrUploadFailed wraps attachment storage failures so callers can map them
// to a gateway error instead of a plain server error.
var ErrUploadFailed = errors.New("attachment upload failed")

// Events fired on order writes. Listeners handle cache invalidation and
// the websocket fan-out so the service stays free of those concerns.
const (
	EventOrderSaved   = "order.saved"
	EventOrderDeleted = "order.deleted"
)

// OrderRepository is the persistence surface the service needs.
type OrderRepository interface {
	All() ([]models.Order, error)
	Find(id uint) (models.Order, error)
	Create(*models.Order) error
	Update(*models.Order) error
	Delete(*models.Order) error
}

// OrderInput is the write payload for creating or updating an order.
type OrderInput struct {
	CustomerName   string        `json:"customer_name"   validate:"required,min=1,max=255"`
	FBProfile      string        `json:"fb_profile"      validate:"nullable,max=255"`
	OrderDetails   string        `json:"order_details"`
	Status         string        `json:"status"          validate:"nullable,in=pending,processing,shipped,delivered,cancelled"`
	OrderDate      string        `json:"order_date"      validate:"nullable,date"`
	DeliveryMethod string        `json:"delivery_method" validate:"nullable,in=jnt,walkin"`
	PaidProduct    models.Amount `json:"paid_product"`
	PaidShipping   models.Amount `json:"paid_shipping"`
	Notes          string        `json:"notes"`
}

// Attachment is an uploaded proof-of-payment image.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// OrderService implements order reads, writes and the dashboard numbers.
type OrderService struct {
	repo OrderRepository
	disk func() storage.Disk
	now  func() time.Time
}

func NewOrderService() *OrderService {
	return &OrderService{
		repo: repositories.NewOrderRepository(),
		disk: storage.Default,
		now:  time.Now,
	}
}

// NewOrderServiceWith wires explicit dependencies. Used by tests.
func NewOrderServiceWith(repo OrderRepository, disk storage.Disk, now func() time.Time) *OrderService {
	return &OrderService{
		repo: repo,
		disk: func() storage.Disk { return disk },
		now:  now,
	}
}

// List returns orders matching f, most recently updated first.
func (s *OrderService) List(f stats.Filter) ([]models.Order, error) {
	orders, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	return f.Apply(orders), nil
}

// Get returns a single order by id.
func (s *OrderService) Get(id uint) (models.Order, error) {
	return s.repo.Find(id)
}

// Dates returns the distinct order dates for the filter dropdown.
func (s *OrderService) Dates() ([]string, error) {
	orders, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	return stats.Dates(orders), nil
}

// Dashboard computes the KPI overview over a windowDays window ending today.
func (s *OrderService) Dashboard(windowDays int) (stats.Overview, error) {
	orders, err := s.repo.All()
	if err != nil {
		return stats.Overview{}, err
	}
	return stats.KPIs(orders, s.now(), windowDays), nil
}

// Save creates (id == 0) or updates an order. The attachment, when present,
// is uploaded before the record is touched: a failed upload aborts the save
// so the database never points at an object that was not stored.
func (s *OrderService) Save(id uint, in OrderInput, file *Attachment) (models.Order, error) {
	var o models.Order

	if id != 0 {
		existing, err := s.repo.Find(id)
		if err != nil {
			return models.Order{}, err
		}
		o = existing
	}

	applyInput(&o, in)

	if file != nil {
		url, err := s.uploadAttachment(file)
		if err != nil {
			metrics.AttachmentUploads.WithLabelValues("failed").Inc()
			return models.Order{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		metrics.AttachmentUploads.WithLabelValues("ok").Inc()
		o.AttachmentURL = url
	}

	if id == 0 {
		o.OrderCode = s.newOrderCode()
		if err := s.repo.Create(&o); err != nil {
			return models.Order{}, err
		}
		metrics.OrderMutations.WithLabelValues("create").Inc()
	} else {
		if err := s.repo.Update(&o); err != nil {
			return models.Order{}, err
		}
		metrics.OrderMutations.WithLabelValues("update").Inc()
	}

	event.Fire(EventOrderSaved, o)
	return o, nil
}

// Delete removes an order by id.
func (s *OrderService) Delete(id uint) error {
	o, err := s.repo.Find(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(&o); err != nil {
		return err
	}
	metrics.OrderMutations.WithLabelValues("delete").Inc()
	event.Fire(EventOrderDeleted, o)
	return nil
}

// applyInput writes the normalised input onto the order. OrderCode and
// AttachmentURL are managed elsewhere and never come from input.
func applyInput(o *models.Order, in OrderInput) {
	o.CustomerName = strings.TrimSpace(in.CustomerName)
	o.FBProfile = strings.TrimSpace(in.FBProfile)
	o.OrderDetails = strings.TrimSpace(in.OrderDetails)
	o.Notes = strings.TrimSpace(in.Notes)
	o.OrderDate = strings.TrimSpace(in.OrderDate)

	o.Status = strings.ToLower(strings.TrimSpace(in.Status))
	if o.Status == "" {
		o.Status = models.StatusPending
	}

	o.DeliveryMethod = strings.ToLower(strings.TrimSpace(in.DeliveryMethod))
	if o.DeliveryMethod == "" {
		o.DeliveryMethod = models.DeliveryJNT
	}

	o.PaidProduct = clampAmount(in.PaidProduct)
	o.PaidShipping = clampAmount(in.PaidShipping)

	// Walk-in orders have no shipping leg.
	if o.DeliveryMethod == models.DeliveryWalkin {
		o.PaidShipping = 0
	}
}

func clampAmount(a models.Amount) float64 {
	if a < 0 {
		return 0
	}
	return float64(a)
}

// uploadAttachment stores the file under a collision-safe key and returns
// its public URL.
func (s *OrderService) uploadAttachment(file *Attachment) (string, error) {
	key := s.attachmentKey(file.Name)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	disk := s.disk()
	err := disk.Put(key, file.Data, storage.PutOptions{
		ContentType:  contentType,
		CacheControl: "3600",
	})
	if err != nil {
		return "", err
	}

	return disk.URL(key), nil
}

// attachmentKey builds "orders/<millis>_<hex>.<ext>". The extension comes
// from the client filename, lowercased and stripped to alphanumerics;
// anything unusable falls back to jpg.
func (s *OrderService) attachmentKey(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	ext = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, ext)
	if ext == "" {
		ext = "jpg"
	}

	buf := make([]byte, 4)
	rand.Read(buf)

	return fmt.Sprintf("orders/%d_%s.%s", s.now().UnixMilli(), hex.EncodeToString(buf), ext)
}

// newOrderCode derives a human-readable code from the creation time.
func (s *OrderService) newOrderCode() string {
	return "ORD-" + strings.ToUpper(strconv.FormatInt(s.now().UnixMilli(), 36))
}
