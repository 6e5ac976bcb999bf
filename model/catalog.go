package model

// ServiceItem is a sellable service in the catalog.
type ServiceItem struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       int64  `json:"price" yaml:"price"`
	Hours       int    `json:"hours,omitempty" yaml:"hours"`
	Description string `json:"description,omitempty" yaml:"description"`
	Complexity  string `json:"complexity,omitempty" yaml:"complexity"`
	Category    string `json:"category,omitempty" yaml:"category"`
	Timeline    string `json:"timeline,omitempty" yaml:"timeline"`
	Popular     bool   `json:"popular,omitempty" yaml:"popular"`
}

// AddOnItem is an optional extra sold next to a service.
type AddOnItem struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       int64  `json:"price" yaml:"price"`
	Description string `json:"description,omitempty" yaml:"description"`
}

type Catalog struct {
	Services []ServiceItem `json:"services" yaml:"services"`
	AddOns   []AddOnItem   `json:"addOns" yaml:"addOns"`
}

func (c *Catalog) Service(id string) (ServiceItem, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceItem{}, false
}

func (c *Catalog) AddOn(id string) (AddOnItem, bool) {
	for _, a := range c.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOnItem{}, false
}
