package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	itemsvc "github.com/itemstore/itemstore-backend/internal/items"
	pkgerrors "github.com/itemstore/itemstore-backend/pkg/errors"
	"github.com/itemstore/itemstore-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func withItemID(req *http.Request, raw string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("itemID", raw)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	return req.WithContext(ctx)
}

func TestGetItem(t *testing.T) {
	logg := testLogger()

	t.Run("invalid id", func(t *testing.T) {
		req := withItemID(httptest.NewRequest(http.MethodGet, "/items/abc", nil), "abc")
		rec := httptest.NewRecorder()
		GetItem(&stubItemService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for non-integer id, got %d", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		stub := &stubItemService{
			getFn: func(ctx context.Context, id int64) (*itemsvc.ItemDTO, error) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item 7 not found")
			},
		}
		req := withItemID(httptest.NewRequest(http.MethodGet, "/items/7", nil), "7")
		rec := httptest.NewRecorder()
		GetItem(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		stub := &stubItemService{
			getFn: func(ctx context.Context, id int64) (*itemsvc.ItemDTO, error) {
				return &itemsvc.ItemDTO{ID: id, Name: "A", Price: 10, IsAvailable: true}, nil
			},
		}
		req := withItemID(httptest.NewRequest(http.MethodGet, "/items/1", nil), "1")
		rec := httptest.NewRecorder()
		GetItem(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var got itemsvc.ItemDTO
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if got.ID != 1 || got.Name != "A" {
			t.Fatalf("unexpected payload: %+v", got)
		}
	})
}

func TestCreateItem(t *testing.T) {
	logg := testLogger()

	post := func(body string, svc itemsvc.Service) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
		rec := httptest.NewRecorder()
		CreateItem(svc, logg).ServeHTTP(rec, req)
		return rec
	}

	t.Run("malformed json", func(t *testing.T) {
		rec := post(`{"name":`, &stubItemService{})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for malformed body, got %d", rec.Code)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := post(`{"name":"A","price":1,"color":"red"}`, &stubItemService{})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for unknown field, got %d", rec.Code)
		}
	})

	t.Run("missing price", func(t *testing.T) {
		rec := post(`{"name":"A"}`, &stubItemService{})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for missing price, got %d", rec.Code)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		rec := post(`{"name":"A","price":-0.01}`, &stubItemService{})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for negative price, got %d", rec.Code)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		var captured itemsvc.ItemInput
		stub := &stubItemService{
			createFn: func(ctx context.Context, input itemsvc.ItemInput) (*itemsvc.ItemDTO, error) {
				captured = input
				return &itemsvc.ItemDTO{ID: 1, Name: input.Name, Price: input.Price, IsAvailable: input.IsAvailable}, nil
			},
		}
		rec := post(`{"name":"A","price":0}`, stub)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
		}
		if !captured.IsAvailable {
			t.Fatal("expected omitted is_available to default to true")
		}
		if captured.Price != 0 {
			t.Fatalf("expected zero price to pass through, got %v", captured.Price)
		}
	})
}

func TestUpdateItem(t *testing.T) {
	logg := testLogger()

	t.Run("not found", func(t *testing.T) {
		stub := &stubItemService{
			updateFn: func(ctx context.Context, id int64, input itemsvc.ItemInput) (*itemsvc.ItemDTO, error) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item 9 not found")
			},
		}
		req := withItemID(httptest.NewRequest(http.MethodPut, "/items/9", strings.NewReader(`{"name":"A","price":1}`)), "9")
		rec := httptest.NewRecorder()
		UpdateItem(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		stub := &stubItemService{
			updateFn: func(ctx context.Context, id int64, input itemsvc.ItemInput) (*itemsvc.ItemDTO, error) {
				return &itemsvc.ItemDTO{ID: id, Name: input.Name, Price: input.Price, IsAvailable: input.IsAvailable}, nil
			},
		}
		req := withItemID(httptest.NewRequest(http.MethodPut, "/items/3", strings.NewReader(`{"name":"B","price":2,"is_available":false}`)), "3")
		rec := httptest.NewRecorder()
		UpdateItem(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var got itemsvc.ItemDTO
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if got.ID != 3 || got.Name != "B" || got.IsAvailable {
			t.Fatalf("unexpected payload: %+v", got)
		}
	})
}

func TestDeleteItem(t *testing.T) {
	logg := testLogger()

	t.Run("success names the item", func(t *testing.T) {
		stub := &stubItemService{
			deleteFn: func(ctx context.Context, id int64) (*itemsvc.ItemDTO, error) {
				return &itemsvc.ItemDTO{ID: id, Name: "doomed"}, nil
			},
		}
		req := withItemID(httptest.NewRequest(http.MethodDelete, "/items/1", nil), "1")
		rec := httptest.NewRecorder()
		DeleteItem(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "doomed") {
			t.Fatalf("expected confirmation to name the item, got %s", rec.Body.String())
		}
	})

	t.Run("nil service", func(t *testing.T) {
		req := withItemID(httptest.NewRequest(http.MethodDelete, "/items/1", nil), "1")
		rec := httptest.NewRecorder()
		DeleteItem(nil, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 when service missing, got %d", rec.Code)
		}
	})
}

type stubItemService struct {
	listFn   func(ctx context.Context) ([]itemsvc.ItemDTO, error)
	getFn    func(ctx context.Context, id int64) (*itemsvc.ItemDTO, error)
	createFn func(ctx context.Context, input itemsvc.ItemInput) (*itemsvc.ItemDTO, error)
	updateFn func(ctx context.Context, id int64, input itemsvc.ItemInput) (*itemsvc.ItemDTO, error)
	deleteFn func(ctx context.Context, id int64) (*itemsvc.ItemDTO, error)
}

func (s *stubItemService) ListItems(ctx context.Context) ([]itemsvc.ItemDTO, error) {
	if s.listFn == nil {
		panic("unexpected ListItems call")
	}
	return s.listFn(ctx)
}

func (s *stubItemService) GetItem(ctx context.Context, id int64) (*itemsvc.ItemDTO, error) {
	if s.getFn == nil {
		panic("unexpected GetItem call")
	}
	return s.getFn(ctx, id)
}

func (s *stubItemService) CreateItem(ctx context.Context, input itemsvc.ItemInput) (*itemsvc.ItemDTO, error) {
	if s.createFn == nil {
		panic("unexpected CreateItem call")
	}
	return s.createFn(ctx, input)
}

func (s *stubItemService) UpdateItem(ctx context.Context, id int64, input itemsvc.ItemInput) (*itemsvc.ItemDTO, error) {
	if s.updateFn == nil {
		panic("unexpected UpdateItem call")
	}
	return s.updateFn(ctx, id, input)
}

func (s *stubItemService) DeleteItem(ctx context.Context, id int64) (*itemsvc.ItemDTO, error) {
	if s.deleteFn == nil {
		panic("unexpected DeleteItem call")
	}
	return s.deleteFn(ctx, id)
}
