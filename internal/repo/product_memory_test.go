package repo

import (
	"errors"
	"sync"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

func TestCreate_AssignsMonotonicIDs(t *testing.T) {
	r := NewInMemoryProductRepository()

	first, err := r.Create(models.Product{Name: "Widget", Price: 9.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.Create(models.Product{Name: "Gadget", Price: 19.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 {
		t.Errorf("expected first ID to be 1, got %d", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("expected second ID to be 2, got %d", second.ID)
	}
}

func TestGetByID_ReturnsStoredProduct(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, _ := r.Create(models.Product{Name: "Widget", Price: 9.99})

	got, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != created {
		t.Errorf("expected %+v, got %+v", created, got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewInMemoryProductRepository()

	_, err := r.GetByID(42)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestClear_DoesNotReuseIDs(t *testing.T) {
	r := NewInMemoryProductRepository()

	r.Create(models.Product{Name: "Widget", Price: 9.99})
	r.Clear()

	created, _ := r.Create(models.Product{Name: "Gadget", Price: 19.99})
	if created.ID != 2 {
		t.Errorf("expected ID 2 after clear, got %d", created.ID)
	}
}

func TestCreate_ConcurrentIDsAreUnique(t *testing.T) {
	r := NewInMemoryProductRepository()

	const n = 100
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := r.Create(models.Product{Name: "Widget", Price: 9.99})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d unique IDs, got %d", n, len(seen))
	}
}
