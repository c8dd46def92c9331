package food

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrFoodIsNotConstructed is returned when a Food was not created through NewFood or RestoreFood.
var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood constructor")

// Food is a sellable catalog entry owned by the catalog service.
//
// Invariants:
//   - name and category are not blank
//   - price is not negative
//   - id is assigned by the catalog store and is zero until the item is stored
type Food struct {
	id        int64
	name      string
	price     kernel.Money
	category  string
	available bool

	isConstructed bool
}

// NewFood creates a catalog entry that has not been stored yet.
func NewFood(name string, price kernel.Money, category string, available bool) (*Food, error) {
	f := &Food{
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		f.setName(name),
		f.setPrice(price),
		f.setCategory(category),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFood rebuilds a stored catalog entry.
func RestoreFood(id int64, name string, price kernel.Money, category string, available bool) (*Food, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("food id", fmt.Errorf("%d is not greater than 0", id))
	}

	f, err := NewFood(name, price, category, available)
	if err != nil {
		return nil, err
	}
	f.id = id
	return f, nil
}

// Validate ensures the Food was created through a constructor.
func (f *Food) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

func (f *Food) ID() int64 {
	return f.id
}

func (f *Food) Name() string {
	return f.name
}

func (f *Food) Price() kernel.Money {
	return f.price
}

func (f *Food) Category() string {
	return f.category
}

func (f *Food) Available() bool {
	return f.available
}

// Snapshot returns the subset of catalog data the ordering core relies on.
func (f *Food) Snapshot() Snapshot {
	return NewSnapshot(f.id, f.price, f.available)
}

func (f *Food) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}

func (f *Food) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	f.price = price
	return nil
}

func (f *Food) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	f.category = category
	return nil
}
