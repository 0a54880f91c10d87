package pricing

import "github.com/bytedance/sonic"

// CatalogProvider supplies model pricing to the interactive flow. Only a
// static provider exists; live pricing sources are out of scope.
type CatalogProvider interface {
	GetPricing(modelName string) (ModelPricing, error)
	GetAllPricings() map[string]ModelPricing
	ProviderName() string
}

// StaticProvider implements CatalogProvider from the built-in catalog.
type StaticProvider struct{}

// NewStaticProvider creates the static pricing provider.
func NewStaticProvider() CatalogProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) GetPricing(modelName string) (ModelPricing, error) {
	return GetPricing(modelName)
}

func (p *StaticProvider) GetAllPricings() map[string]ModelPricing {
	return GetAllPricings()
}

func (p *StaticProvider) ProviderName() string {
	return "static"
}

// CatalogJSON renders a provider's catalog as indented JSON with sorted model
// names, for printing ahead of the price prompt.
func CatalogJSON(provider CatalogProvider) (string, error) {
	data, err := sonic.ConfigStd.MarshalIndent(provider.GetAllPricings(), "", "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
