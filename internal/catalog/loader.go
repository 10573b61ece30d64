package catalog

import (
	"embed"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/digimart/storefront/internal/domain"
)

//go:embed data/products.json data/categories.json
var embeddedData embed.FS

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	productsFile   = "products.json"
	categoriesFile = "categories.json"
)

// LoadDataset reads the catalog from dir. With an empty dir the dataset
// bundled into the binary is used. The data is trusted static content: shape
// errors fail the load, business invariants are not checked.
func LoadDataset(dir string) (domain.Dataset, error) {
	if dir == "" {
		return loadEmbedded()
	}

	var ds domain.Dataset
	pdata, err := os.ReadFile(filepath.Join(dir, productsFile))
	if err != nil {
		return ds, errors.Wrap(err, "catalog: read products")
	}
	cdata, err := os.ReadFile(filepath.Join(dir, categoriesFile))
	if err != nil {
		return ds, errors.Wrap(err, "catalog: read categories")
	}
	return decodeDataset(pdata, cdata)
}

func loadEmbedded() (domain.Dataset, error) {
	var ds domain.Dataset
	pdata, err := embeddedData.ReadFile("data/" + productsFile)
	if err != nil {
		return ds, errors.Wrap(err, "catalog: embedded products")
	}
	cdata, err := embeddedData.ReadFile("data/" + categoriesFile)
	if err != nil {
		return ds, errors.Wrap(err, "catalog: embedded categories")
	}
	return decodeDataset(pdata, cdata)
}

func decodeDataset(pdata, cdata []byte) (domain.Dataset, error) {
	var ds domain.Dataset
	if err := json.Unmarshal(pdata, &ds.Products); err != nil {
		return ds, errors.Wrap(err, "catalog: decode products")
	}
	if err := json.Unmarshal(cdata, &ds.Categories); err != nil {
		return ds, errors.Wrap(err, "catalog: decode categories")
	}
	return ds, nil
}
