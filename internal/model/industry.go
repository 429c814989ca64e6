package model

import "github.com/rotisserie/eris"

// Industry is the closed set of supported business sectors. It is used
// purely as a lookup key into benchmark tables.
type Industry string

const (
	IndustryRetail        Industry = "Retail"
	IndustryManufacturing Industry = "Manufacturing"
	IndustryServices      Industry = "Services"
	IndustryAgriculture   Industry = "Agriculture"
	IndustryEcommerce     Industry = "E-commerce"
	IndustryLogistics     Industry = "Logistics"
)

// Industries returns all supported industries in display order.
func Industries() []Industry {
	return []Industry{
		IndustryRetail,
		IndustryManufacturing,
		IndustryServices,
		IndustryAgriculture,
		IndustryEcommerce,
		IndustryLogistics,
	}
}

// ParseIndustry validates a raw industry string.
func ParseIndustry(s string) (Industry, error) {
	for _, ind := range Industries() {
		if string(ind) == s {
			return ind, nil
		}
	}
	return "", eris.Errorf("model: unknown industry %q", s)
}
