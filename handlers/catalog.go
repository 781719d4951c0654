package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pharmapack/quotebuilder/pkg/catalog"
)

// GetFormulations handles GET /catalog/formulations
func GetFormulations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"formulations":   catalog.Formulations(),
		"injectionTypes": catalog.InjectionTypes(),
		"waterTypes":     catalog.WaterTypes(),
	})
}

// GetFormulationOptions handles GET /catalog/formulations/{type}: the option
// sets the item editor renders for one formulation. Unknown types get empty
// sets, never an error.
func GetFormulationOptions(w http.ResponseWriter, r *http.Request) {
	formulation := mux.Vars(r)["type"]

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"formulationType": formulation,
		"packingOptions":  catalog.PackingOptionsFor(formulation),
		"packagingTypes":  catalog.PackagingOptionsFor(formulation),
		"cartonOptions":   catalog.CartonOptionsFor(formulation),
		"requiresPacking": catalog.RequiresPacking(formulation),
	})
}
