package services_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/app/services"
	"github.com/shashiranjanraj/ordertrack/app/stats"
	"github.com/shashiranjanraj/ordertrack/pkg/storage"
)

// ─── Fakes ────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	orders  map[uint]models.Order
	nextID  uint
	created int
	updated int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: map[uint]models.Order{}, nextID: 1}
}

func (r *fakeRepo) All() ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeRepo) Find(id uint) (models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return models.Order{}, errors.New("record not found")
	}
	return o, nil
}

func (r *fakeRepo) Create(o *models.Order) error {
	o.ID = r.nextID
	r.nextID++
	r.orders[o.ID] = *o
	r.created++
	return nil
}

func (r *fakeRepo) Update(o *models.Order) error {
	r.orders[o.ID] = *o
	r.updated++
	return nil
}

func (r *fakeRepo) Delete(o *models.Order) error {
	delete(r.orders, o.ID)
	return nil
}

type fakeDisk struct {
	puts    map[string]storage.PutOptions
	lastKey string
	fail    bool
}

func newFakeDisk() *fakeDisk {
	return &fakeDisk{puts: map[string]storage.PutOptions{}}
}

func (d *fakeDisk) Put(path string, content []byte, opts storage.PutOptions) error {
	if d.fail {
		return errors.New("disk full")
	}
	d.puts[path] = opts
	d.lastKey = path
	return nil
}

func (d *fakeDisk) Get(string) ([]byte, error) { return nil, errors.New("not implemented") }
func (d *fakeDisk) GetStream(string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}
func (d *fakeDisk) Exists(string) bool     { return false }
func (d *fakeDisk) Delete(string) error    { return nil }
func (d *fakeDisk) URL(path string) string { return "https://cdn.test/" + path }

var fixedNow = func() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func newService(repo *fakeRepo, disk *fakeDisk) *services.OrderService {
	return services.NewOrderServiceWith(repo, disk, fixedNow)
}

// ─── Save ─────────────────────────────────────────────────────────────────────

func TestSaveCreateDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, newFakeDisk())

	o, err := svc.Save(0, services.OrderInput{CustomerName: "  Maria  "}, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if o.CustomerName != "Maria" {
		t.Errorf("name not trimmed: %q", o.CustomerName)
	}
	if o.Status != "pending" {
		t.Errorf("expected default status pending, got %q", o.Status)
	}
	if o.DeliveryMethod != "jnt" {
		t.Errorf("expected default delivery jnt, got %q", o.DeliveryMethod)
	}
	if !strings.HasPrefix(o.OrderCode, "ORD-") {
		t.Errorf("expected ORD- code, got %q", o.OrderCode)
	}
	if repo.created != 1 {
		t.Errorf("expected 1 create, got %d", repo.created)
	}
}

func TestSaveWalkinZeroesShipping(t *testing.T) {
	svc := newService(newFakeRepo(), newFakeDisk())

	o, err := svc.Save(0, services.OrderInput{
		CustomerName:   "Juan",
		DeliveryMethod: "walkin",
		PaidProduct:    100,
		PaidShipping:   45,
	}, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if o.PaidShipping != 0 {
		t.Errorf("walkin order kept shipping %v", o.PaidShipping)
	}
	if o.PaidProduct != 100 {
		t.Errorf("product changed: %v", o.PaidProduct)
	}
}

func TestSaveClampsNegativeAmounts(t *testing.T) {
	svc := newService(newFakeRepo(), newFakeDisk())

	o, err := svc.Save(0, services.OrderInput{
		CustomerName: "Ana",
		PaidProduct:  -50,
		PaidShipping: -5,
	}, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if o.PaidProduct != 0 || o.PaidShipping != 0 {
		t.Errorf("negatives not clamped: %v / %v", o.PaidProduct, o.PaidShipping)
	}
}

func TestSaveUpdatePreservesCodeAndAttachment(t *testing.T) {
	repo := newFakeRepo()
	existing := models.Order{
		OrderCode:     "ORD-KEEP",
		AttachmentURL: "https://cdn.test/orders/old.jpg",
		CustomerName:  "Old Name",
	}
	existing.ID = 7
	repo.orders[7] = existing
	svc := newService(repo, newFakeDisk())

	o, err := svc.Save(7, services.OrderInput{CustomerName: "New Name", Status: "shipped"}, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if o.OrderCode != "ORD-KEEP" {
		t.Errorf("order code changed on update: %q", o.OrderCode)
	}
	if o.AttachmentURL != "https://cdn.test/orders/old.jpg" {
		t.Errorf("attachment lost on update: %q", o.AttachmentURL)
	}
	if o.CustomerName != "New Name" || o.Status != "shipped" {
		t.Errorf("update not applied: %+v", o)
	}
	if repo.updated != 1 || repo.created != 0 {
		t.Errorf("expected 1 update 0 creates, got %d/%d", repo.updated, repo.created)
	}
}

// ─── Attachments ──────────────────────────────────────────────────────────────

func TestAttachmentKeyAndOptions(t *testing.T) {
	disk := newFakeDisk()
	svc := newService(newFakeRepo(), disk)

	o, err := svc.Save(0, services.OrderInput{CustomerName: "Maria"}, &services.Attachment{
		Name:        "Receipt.PNG",
		ContentType: "image/png",
		Data:        []byte("img"),
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	key := disk.lastKey
	if !strings.HasPrefix(key, "orders/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("bad key %q", key)
	}

	opts := disk.puts[key]
	if opts.ContentType != "image/png" {
		t.Errorf("content type %q", opts.ContentType)
	}
	if opts.CacheControl != "3600" {
		t.Errorf("cache control %q", opts.CacheControl)
	}

	if o.AttachmentURL != "https://cdn.test/"+key {
		t.Errorf("attachment url %q", o.AttachmentURL)
	}
}

func TestAttachmentExtensionFallsBackToJpg(t *testing.T) {
	disk := newFakeDisk()
	svc := newService(newFakeRepo(), disk)

	_, err := svc.Save(0, services.OrderInput{CustomerName: "Maria"}, &services.Attachment{
		Name: "receipt",
		Data: []byte("img"),
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasSuffix(disk.lastKey, ".jpg") {
		t.Errorf("expected .jpg fallback, got %q", disk.lastKey)
	}

	if ct := disk.puts[disk.lastKey].ContentType; ct != "image/jpeg" {
		t.Errorf("expected image/jpeg default, got %q", ct)
	}
}

func TestUploadFailureAbortsSave(t *testing.T) {
	repo := newFakeRepo()
	disk := newFakeDisk()
	disk.fail = true
	svc := newService(repo, disk)

	_, err := svc.Save(0, services.OrderInput{CustomerName: "Maria"}, &services.Attachment{
		Name: "receipt.jpg",
		Data: []byte("img"),
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if repo.created != 0 {
		t.Errorf("record created despite failed upload")
	}
}

// ─── Reads ────────────────────────────────────────────────────────────────────

func TestListAppliesFilter(t *testing.T) {
	repo := newFakeRepo()
	repo.orders[1] = models.Order{OrderCode: "A", DeliveryMethod: "jnt", Status: "pending"}
	repo.orders[2] = models.Order{OrderCode: "B", DeliveryMethod: "walkin", Status: "pending"}
	svc := newService(repo, newFakeDisk())

	got, err := svc.List(stats.Filter{Tab: "walkin"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].OrderCode != "B" {
		t.Errorf("expected only B, got %+v", got)
	}
}

func TestDashboardUsesInjectedClock(t *testing.T) {
	repo := newFakeRepo()
	repo.orders[1] = models.Order{CustomerName: "Maria", OrderDate: "2026-03-10", PaidProduct: 100}
	svc := newService(repo, newFakeDisk())

	kpi, err := svc.Dashboard(7)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	if kpi.TodayOrders != 1 {
		t.Errorf("expected 1 today order, got %d", kpi.TodayOrders)
	}
	if kpi.Days[0].Date != "2026-03-10" {
		t.Errorf("expected window anchored at injected now, got %q", kpi.Days[0].Date)
	}
}
