package mcp

import (
	"context"

	"github.com/claude/fuelplan/internal/catalog"
	"github.com/claude/fuelplan/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolComputePlan = mcp.NewTool("compute_plan",
	mcp.WithDescription("Compute a complete race fueling plan: hourly carbohydrate/fluid/sodium targets, a timed intake schedule, and whole-session totals. All inputs are optional except duration; missing values degrade to conservative defaults."),
	mcp.WithString("duration", mcp.Required(), mcp.Description("Session duration as HH:MM (e.g. '03:30')")),
	mcp.WithString("modality", mcp.Description("Sport modality. Defaults to 'running'."), mcp.Enum("running", "cycling")),
	mcp.WithNumber("pace_min_per_km", mcp.Description("Running pace in minutes per kilometer (running only)")),
	mcp.WithNumber("speed_kmh", mcp.Description("Average speed in km/h (cycling only)")),
	mcp.WithNumber("temperature_c", mcp.Description("Expected temperature in °C (informational)")),
	mcp.WithNumber("body_mass_kg", mcp.Description("Body mass in kg; enables the body-mass-loss percentage in the summary")),
	mcp.WithBoolean("gut_trained", mcp.Description("Whether the athlete has practiced race fueling in training; lifts the gut cap")),
	mcp.WithNumber("weeks_training", mcp.Description("Questionnaire 0-3: weeks of structured training")),
	mcp.WithNumber("sessions_per_week", mcp.Description("Questionnaire 0-3: sessions per week")),
	mcp.WithNumber("hours_per_week", mcp.Description("Questionnaire 0-3: training hours per week")),
	mcp.WithNumber("long_sessions", mcp.Description("Questionnaire 0-3: long sessions per month")),
	mcp.WithNumber("gut_training_history", mcp.Description("Questionnaire 0-3: history of fueling during training")),
	mcp.WithNumber("gi_symptom_history", mcp.Description("Questionnaire 0-3: history of race-day GI symptoms")),
	mcp.WithNumber("sweat_rate_l_per_h", mcp.Description("Measured or estimated sweat rate in L/h")),
	mcp.WithNumber("sweat_sodium_mg_per_l", mcp.Description("Sweat sodium concentration in mg/L")),
	mcp.WithNumber("replace_percent", mcp.Description("Percentage of sweat loss to replace while moving (typically 60-80)")),
	mcp.WithString("cho_product", mcp.Description("Carbohydrate product name from the catalog. Unknown names fall back to the first entry.")),
	mcp.WithString("drink", mcp.Description("Drink name from the catalog")),
	mcp.WithString("electrolyte", mcp.Description("Electrolyte supplement name from the catalog")),
)

var toolEvaluateSweatTest = mcp.NewTool("evaluate_sweat_test",
	mcp.WithDescription("Evaluate a sweat-rate self-test from pre/post body mass and bottle weights. Urine jar weights are optional and only subtracted when both are present. Implausible measurements clamp to zero."),
	mcp.WithString("duration", mcp.Required(), mcp.Description("Test duration as HH:MM")),
	mcp.WithNumber("pre_mass_kg", mcp.Required(), mcp.Description("Body mass before the session, kg")),
	mcp.WithNumber("post_mass_kg", mcp.Required(), mcp.Description("Body mass after the session, kg")),
	mcp.WithNumber("bottle_before_g", mcp.Description("Bottle weight before, grams")),
	mcp.WithNumber("bottle_after_g", mcp.Description("Bottle weight after, grams")),
	mcp.WithNumber("urine_empty_g", mcp.Description("Empty urine jar weight, grams")),
	mcp.WithNumber("urine_full_g", mcp.Description("Full urine jar weight, grams")),
)

var toolScreenTolerance = mcp.NewTool("screen_tolerance",
	mcp.WithDescription("Screen gut tolerance symptoms (each scored 0-3) against a product's composition. Returns cluster scores and raised flags with practical suggestions. A screening heuristic, not a diagnosis."),
	mcp.WithNumber("nausea", mcp.Description("Upper-GI: nausea score 0-3")),
	mcp.WithNumber("fullness", mcp.Description("Upper-GI: stomach fullness score 0-3")),
	mcp.WithNumber("reflux", mcp.Description("Upper-GI: reflux score 0-3")),
	mcp.WithNumber("bloating", mcp.Description("Lower-GI: bloating score 0-3")),
	mcp.WithNumber("gas", mcp.Description("Lower-GI: gas score 0-3")),
	mcp.WithNumber("cramping", mcp.Description("Lower-GI: cramping score 0-3")),
	mcp.WithNumber("urgency", mcp.Description("Lower-GI: urgency score 0-3")),
	mcp.WithNumber("diarrhea", mcp.Description("Lower-GI: diarrhea score 0-3")),
	mcp.WithNumber("palpitations", mcp.Description("Neurological: palpitations score 0-3")),
	mcp.WithNumber("anxiety", mcp.Description("Neurological: anxiety/jitters score 0-3")),
	mcp.WithString("cho_product", mcp.Description("Product under suspicion, by catalog name")),
)

var toolListCatalog = mcp.NewTool("list_catalog",
	mcp.WithDescription("List all carbohydrate products, drinks and electrolyte supplements in the catalog with their composition."),
)

var toolAddCHOProduct = mcp.NewTool("add_cho_product",
	mcp.WithDescription("Add a carbohydrate product (gel, bar, ...) to the catalog."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Display name")),
	mcp.WithString("kind", mcp.Description("Form factor. Defaults to 'gel'."), mcp.Enum("gel", "bar", "other")),
	mcp.WithNumber("cho_g", mcp.Required(), mcp.Description("Total carbohydrate per unit, grams")),
	mcp.WithNumber("glucose_g", mcp.Description("Glucose per unit, grams")),
	mcp.WithNumber("fructose_g", mcp.Description("Fructose per unit, grams")),
	mcp.WithNumber("maltodextrin_g", mcp.Description("Maltodextrin per unit, grams")),
	mcp.WithNumber("sucrose_g", mcp.Description("Sucrose per unit, grams")),
	mcp.WithNumber("caffeine_mg", mcp.Description("Caffeine per unit, mg")),
	mcp.WithString("notes", mcp.Description("Free-form notes")),
)

var toolAddDrink = mcp.NewTool("add_drink",
	mcp.WithDescription("Add a sports drink to the catalog, described per serving."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Display name")),
	mcp.WithNumber("ml_per_serving", mcp.Required(), mcp.Description("Serving volume, ml")),
	mcp.WithNumber("cho_g_per_serving", mcp.Description("Carbohydrate per serving, grams")),
	mcp.WithNumber("sodium_mg_per_serving", mcp.Description("Sodium per serving, mg")),
	mcp.WithString("notes", mcp.Description("Free-form notes")),
)

var toolAddElectrolyte = mcp.NewTool("add_electrolyte",
	mcp.WithDescription("Add an electrolyte supplement (capsule or tab) to the catalog."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Display name")),
	mcp.WithNumber("sodium_mg_per_unit", mcp.Required(), mcp.Description("Sodium per capsule/tab, mg")),
	mcp.WithString("notes", mcp.Description("Free-form notes")),
)

// --- Tool handlers ---

func planInputFromRequest(req mcp.CallToolRequest, duration string) plan.Input {
	return plan.Input{
		Profile: plan.Profile{
			Modality:     plan.Modality(req.GetString("modality", string(plan.ModalityRunning))),
			Duration:     duration,
			PaceMinPerKm: req.GetFloat("pace_min_per_km", 0),
			SpeedKmh:     req.GetFloat("speed_kmh", 0),
			TemperatureC: req.GetFloat("temperature_c", 0),
			BodyMassKg:   req.GetFloat("body_mass_kg", 0),
			GutTrained:   req.GetBool("gut_trained", false),
		},
		Questionnaire: plan.Questionnaire{
			WeeksTraining:      req.GetInt("weeks_training", 0),
			SessionsPerWeek:    req.GetInt("sessions_per_week", 0),
			HoursPerWeek:       req.GetInt("hours_per_week", 0),
			LongSessions:       req.GetInt("long_sessions", 0),
			GutTrainingHistory: req.GetInt("gut_training_history", 0),
			GISymptomHistory:   req.GetInt("gi_symptom_history", 0),
		},
		Hydration: plan.HydrationInput{
			SweatRateLPerH: req.GetFloat("sweat_rate_l_per_h", 0),
			SweatSodiumMgL: req.GetFloat("sweat_sodium_mg_per_l", 0),
			ReplacePercent: req.GetFloat("replace_percent", 0),
		},
	}
}

func (h *handlers) computePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	duration, err := req.RequireString("duration")
	if err != nil {
		return mcp.NewToolResultError("duration parameter is required"), nil
	}

	product, err := h.cat.CHOProductByName(ctx, req.GetString("cho_product", ""))
	if err != nil {
		h.log.Error("mcp compute_plan: cho product lookup", "error", err)
		return mcp.NewToolResultError("catalog lookup failed: " + err.Error()), nil
	}
	drink, err := h.cat.DrinkByName(ctx, req.GetString("drink", ""))
	if err != nil {
		h.log.Error("mcp compute_plan: drink lookup", "error", err)
		return mcp.NewToolResultError("catalog lookup failed: " + err.Error()), nil
	}
	elec, err := h.cat.ElectrolyteByName(ctx, req.GetString("electrolyte", ""))
	if err != nil {
		h.log.Error("mcp compute_plan: electrolyte lookup", "error", err)
		return mcp.NewToolResultError("catalog lookup failed: " + err.Error()), nil
	}

	p := plan.Compute(planInputFromRequest(req, duration), product, drink, elec)

	result, err := mcp.NewToolResultJSON(p)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) evaluateSweatTest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	duration, err := req.RequireString("duration")
	if err != nil {
		return mcp.NewToolResultError("duration parameter is required"), nil
	}

	test := plan.SweatTest{
		Duration:      duration,
		PreMassKg:     req.GetFloat("pre_mass_kg", 0),
		PostMassKg:    req.GetFloat("post_mass_kg", 0),
		BottleBeforeG: req.GetFloat("bottle_before_g", 0),
		BottleAfterG:  req.GetFloat("bottle_after_g", 0),
		UrineEmptyG:   req.GetFloat("urine_empty_g", 0),
		UrineFullG:    req.GetFloat("urine_full_g", 0),
	}

	result, err := mcp.NewToolResultJSON(test.Evaluate())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) screenTolerance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	product, err := h.cat.CHOProductByName(ctx, req.GetString("cho_product", ""))
	if err != nil {
		h.log.Error("mcp screen_tolerance: cho product lookup", "error", err)
		return mcp.NewToolResultError("catalog lookup failed: " + err.Error()), nil
	}

	symptoms := plan.Symptoms{
		Nausea:       req.GetInt("nausea", 0),
		Fullness:     req.GetInt("fullness", 0),
		Reflux:       req.GetInt("reflux", 0),
		Bloating:     req.GetInt("bloating", 0),
		Gas:          req.GetInt("gas", 0),
		Cramping:     req.GetInt("cramping", 0),
		Urgency:      req.GetInt("urgency", 0),
		Diarrhea:     req.GetInt("diarrhea", 0),
		Palpitations: req.GetInt("palpitations", 0),
		Anxiety:      req.GetInt("anxiety", 0),
	}

	result, err := mcp.NewToolResultJSON(plan.BuildToleranceReport(symptoms, product))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	full, err := h.fullCatalog(ctx)
	if err != nil {
		h.log.Error("mcp list_catalog", "error", err)
		return mcp.NewToolResultError("catalog query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(full)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) addCHOProduct(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	choG := req.GetFloat("cho_g", 0)
	if choG <= 0 {
		return mcp.NewToolResultError("cho_g must be positive"), nil
	}

	added, err := h.cat.AddCHOProduct(ctx, catalog.CHOProduct{
		Name:          name,
		Kind:          catalog.CHOKind(req.GetString("kind", string(catalog.KindGel))),
		CHOGrams:      choG,
		GlucoseGrams:  req.GetFloat("glucose_g", 0),
		FructoseGrams: req.GetFloat("fructose_g", 0),
		MaltodextrinG: req.GetFloat("maltodextrin_g", 0),
		SucroseGrams:  req.GetFloat("sucrose_g", 0),
		CaffeineMg:    req.GetFloat("caffeine_mg", 0),
		Notes:         req.GetString("notes", ""),
	})
	if err != nil {
		h.log.Error("mcp add_cho_product", "name", name, "error", err)
		return mcp.NewToolResultError("insert failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(added)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) addDrink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	ml := req.GetFloat("ml_per_serving", 0)
	if ml <= 0 {
		return mcp.NewToolResultError("ml_per_serving must be positive"), nil
	}

	added, err := h.cat.AddDrink(ctx, catalog.Drink{
		Name:             name,
		MlPerServing:     ml,
		CHOPerServing:    req.GetFloat("cho_g_per_serving", 0),
		SodiumPerServing: req.GetFloat("sodium_mg_per_serving", 0),
		Notes:            req.GetString("notes", ""),
	})
	if err != nil {
		h.log.Error("mcp add_drink", "name", name, "error", err)
		return mcp.NewToolResultError("insert failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(added)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) addElectrolyte(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	sodium := req.GetFloat("sodium_mg_per_unit", 0)
	if sodium <= 0 {
		return mcp.NewToolResultError("sodium_mg_per_unit must be positive"), nil
	}

	added, err := h.cat.AddElectrolyte(ctx, catalog.Electrolyte{
		Name:          name,
		SodiumPerUnit: sodium,
		Notes:         req.GetString("notes", ""),
	})
	if err != nil {
		h.log.Error("mcp add_electrolyte", "name", name, "error", err)
		return mcp.NewToolResultError("insert failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(added)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
