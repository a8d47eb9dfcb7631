package service

import (
	"context"
	"errors"
	"testing"

	"github.com/babies-shop/commerce-api/internal/core/domain"
	"github.com/babies-shop/commerce-api/internal/core/ports"
)

func goodsInput(name string) ports.GoodsInput {
	return ports.GoodsInput{
		Name:     name,
		Price:    19.99,
		Category: "toys",
		Quantity: 7,
	}
}

func TestCatalogService_Create(t *testing.T) {
	repo := newStubGoodsRepo()
	svc := NewCatalogService(repo, discardLogger)

	created, err := svc.CreateGoods(context.Background(), goodsInput("rattle"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
	if created.Quantity != 7 {
		t.Fatalf("unexpected stock: %d", created.Quantity)
	}
}

func TestCatalogService_GetAndList(t *testing.T) {
	repo := newStubGoodsRepo()
	svc := NewCatalogService(repo, discardLogger)

	created, _ := svc.CreateGoods(context.Background(), goodsInput("rattle"))
	_, _ = svc.CreateGoods(context.Background(), goodsInput("bib"))

	got, err := svc.GetGoods(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "rattle" {
		t.Fatalf("unexpected goods: %+v", got)
	}

	all, err := svc.ListGoods(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 goods, got %d", len(all))
	}

	if _, err := svc.GetGoods(context.Background(), "ghost"); !errors.Is(err, domain.ErrGoodsNotFound) {
		t.Fatalf("expected ErrGoodsNotFound, got %v", err)
	}
}

func TestCatalogService_Update(t *testing.T) {
	repo := newStubGoodsRepo()
	svc := NewCatalogService(repo, discardLogger)

	created, _ := svc.CreateGoods(context.Background(), goodsInput("rattle"))

	in := goodsInput("rattle deluxe")
	in.Price = 29.99
	in.Quantity = 3
	updated, err := svc.UpdateGoods(context.Background(), created.ID, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "rattle deluxe" || updated.Price != 29.99 || updated.Quantity != 3 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := svc.UpdateGoods(context.Background(), "ghost", in); !errors.Is(err, domain.ErrGoodsNotFound) {
		t.Fatalf("expected ErrGoodsNotFound, got %v", err)
	}
}

func TestCatalogService_Delete(t *testing.T) {
	repo := newStubGoodsRepo()
	svc := NewCatalogService(repo, discardLogger)

	created, _ := svc.CreateGoods(context.Background(), goodsInput("rattle"))

	if err := svc.DeleteGoods(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetGoods(context.Background(), created.ID); !errors.Is(err, domain.ErrGoodsNotFound) {
		t.Fatalf("expected ErrGoodsNotFound after delete, got %v", err)
	}
	if err := svc.DeleteGoods(context.Background(), created.ID); !errors.Is(err, domain.ErrGoodsNotFound) {
		t.Fatalf("expected ErrGoodsNotFound on second delete, got %v", err)
	}
}
