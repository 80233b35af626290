package menu

import "testing"

func TestDishInputValidate(t *testing.T) {
	valid := DishInput{Name: "Tarte", Category: CategoryDessert, Price: 6, Quantity: 2}

	tests := []struct {
		name    string
		mutate  func(*DishInput)
		wantErr bool
	}{
		{"valid", func(*DishInput) {}, false},
		{"zero stock and free", func(in *DishInput) { in.Price, in.Quantity = 0, 0 }, false},
		{"blank name", func(in *DishInput) { in.Name = "  " }, true},
		{"unknown category", func(in *DishInput) { in.Category = "snack" }, true},
		{"empty category", func(in *DishInput) { in.Category = "" }, true},
		{"negative price", func(in *DishInput) { in.Price = -1 }, true},
		{"negative quantity", func(in *DishInput) { in.Quantity = -3 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryAperitif, CategoryEntree, CategoryPlat, CategoryDessert, CategoryBoisson} {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if Category("Plat").Valid() {
		t.Error("categories are case sensitive")
	}
}
