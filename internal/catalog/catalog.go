package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"golang.org/x/text/currency"
)

// Entry is a product as it arrives from configuration, with a display cost.
type Entry struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Cost        string `json:"cost"`
}

type Catalog struct {
	products []domain.Product
	byName   map[string]int
}

var defaultEntries = []Entry{
	{Name: "Snake Plant", Image: "https://cdn.pixabay.com/photo/2021/01/22/06/04/snake-plant-5939187_1280.jpg", Description: "Produces oxygen at night, improving air quality.", Cost: "$15"},
	{Name: "Spider Plant", Image: "https://cdn.pixabay.com/photo/2018/07/11/06/47/chlorophytum-3530413_1280.jpg", Description: "Filters formaldehyde and xylene from the air.", Cost: "$12"},
	{Name: "Peace Lily", Image: "https://cdn.pixabay.com/photo/2019/06/12/14/14/peace-lilies-4269365_1280.jpg", Description: "Removes mold spores and purifies the air.", Cost: "$18"},
	{Name: "Lavender", Image: "https://images.unsplash.com/photo-1611909023032-2d6b3134ecba", Description: "Calming scent, used in aromatherapy.", Cost: "$20"},
	{Name: "Jasmine", Image: "https://images.unsplash.com/photo-1592729645009-b96d1e63d14b", Description: "Sweet fragrance, promotes relaxation.", Cost: "$18"},
	{Name: "Aloe Vera", Image: "https://cdn.pixabay.com/photo/2018/04/02/07/42/leaf-3283175_1280.jpg", Description: "Soothing gel used for skin ailments.", Cost: "$14"},
}

func Default(fallback currency.Unit) *Catalog {
	c, err := New(defaultEntries, fallback)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog. Costs that do not parse are kept with a zero price.
func New(entries []Entry, fallback currency.Unit) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]int, len(entries))}

	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("product name is empty")
		}
		if _, ok := c.byName[e.Name]; ok {
			return nil, fmt.Errorf("product[%s] is duplicated", e.Name)
		}

		c.byName[e.Name] = len(c.products)
		c.products = append(c.products, domain.Product{
			Name:        e.Name,
			Image:       e.Image,
			Description: e.Description,
			Price:       domain.ParseMoney(e.Cost, fallback),
		})
	}

	return c, nil
}

// ParseJSON reads a JSON array of entries.
func ParseJSON(data string, fallback currency.Unit) (*Catalog, error) {
	var entries []Entry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	c, err := New(entries, fallback)
	if err != nil {
		return nil, fmt.Errorf("catalog.New: %w", err)
	}

	return c, nil
}

func (c *Catalog) Products() []domain.Product {
	products := make([]domain.Product, len(c.products))
	copy(products, c.products)
	return products
}

func (c *Catalog) Lookup(name string) (domain.Product, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}
