package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/domain/model"
	testhelpers "github.com/zendocod/zendo/internal/test"
	"github.com/zendocod/zendo/internal/usecase"
)

func TestProductCreateDerivesSlug(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	uc := usecase.NewProductUseCase(products)

	product, err := uc.Create(context.Background(), usecase.SaveProductInput{
		Name:      "  Crème Éclat 2000  ",
		ShortDesc: " soin visage ",
		Offers: []model.Offer{
			{Quantity: 1, Label: "1 pot", PriceValue: 9900},
			{Quantity: 0, Label: "vide", PriceValue: 0},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Slug != "cr-me-clat-2000" {
		t.Fatalf("unexpected derived slug %q", product.Slug)
	}
	if product.Name != "Crème Éclat 2000" {
		t.Fatalf("expected trimmed name, got %q", product.Name)
	}
	if product.ShortDesc != "soin visage" {
		t.Fatalf("expected trimmed short desc, got %q", product.ShortDesc)
	}
	if len(product.Offers) != 1 || product.Offers[0].PriceValue != 9900 {
		t.Fatalf("expected blank offer tiers dropped, got %+v", product.Offers)
	}
	if _, ok := products.Products[product.Slug]; !ok {
		t.Fatal("expected product to be persisted")
	}
}

func TestProductCreateRequiresName(t *testing.T) {
	uc := usecase.NewProductUseCase(testhelpers.NewProductRepositoryStub())

	if _, err := uc.Create(context.Background(), usecase.SaveProductInput{Name: "   "}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProductCreateRejectsDuplicateSlug(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	products.Products["zendo-gel"] = &model.Product{Slug: "zendo-gel", Name: "Zendo Gel"}
	uc := usecase.NewProductUseCase(products)

	_, err := uc.Create(context.Background(), usecase.SaveProductInput{
		Slug: "zendo-gel",
		Name: "Autre Gel",
	})
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if products.Products["zendo-gel"].Name != "Zendo Gel" {
		t.Fatal("existing product must not be overwritten")
	}
}

func TestProductUpdateReplacesFields(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	products.Products["zendo-gel"] = &model.Product{
		Slug:      "zendo-gel",
		Name:      "Zendo Gel",
		ShortDesc: "ancien texte",
		Offers:    []model.Offer{{Quantity: 1, PriceValue: 9900}},
	}
	uc := usecase.NewProductUseCase(products)

	product, err := uc.Update(context.Background(), "zendo-gel", usecase.SaveProductInput{
		Name:      "Zendo Gel Pro",
		ShortDesc: "nouveau texte",
		Images:    []string{" /img/1.jpg ", ""},
		Offers: []model.Offer{
			{Quantity: 1, Label: "1 boîte", PriceValue: 10900},
			{Quantity: 2, Label: "2 boîtes", PriceValue: 15900},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Zendo Gel Pro" || product.ShortDesc != "nouveau texte" {
		t.Fatalf("expected fields replaced, got %+v", product)
	}
	if len(product.Images) != 1 || product.Images[0] != "/img/1.jpg" {
		t.Fatalf("expected blank images dropped and trimmed, got %+v", product.Images)
	}
	if len(product.Offers) != 2 || product.Offers[1].PriceValue != 15900 {
		t.Fatalf("expected offer ladder replaced, got %+v", product.Offers)
	}
	stored := products.Products["zendo-gel"]
	if stored.ShortDesc != "nouveau texte" {
		t.Fatal("expected update to be persisted")
	}
}

func TestProductUpdateKeepsNameWhenBlank(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	products.Products["zendo-gel"] = &model.Product{Slug: "zendo-gel", Name: "Zendo Gel"}
	uc := usecase.NewProductUseCase(products)

	product, err := uc.Update(context.Background(), "zendo-gel", usecase.SaveProductInput{Name: "  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Zendo Gel" {
		t.Fatalf("expected stored name kept, got %q", product.Name)
	}
}

func TestProductUpdateUnknownSlug(t *testing.T) {
	uc := usecase.NewProductUseCase(testhelpers.NewProductRepositoryStub())

	if _, err := uc.Update(context.Background(), "missing", usecase.SaveProductInput{Name: "X"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
