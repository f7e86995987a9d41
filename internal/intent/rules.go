// Package intent parses normalized Swedish utterances about painting work
// into structured task intents. Matching is driven by ordered rule tables
// rather than ad hoc string scanning, so the evaluation order is explicit
// and testable.
package intent

import "maleri_backend/internal/catalog"

// Action is the recognized kind of painting operation.
type Action string

const (
	ActionPaint    Action = "paint"
	ActionPrime    Action = "prime"
	ActionTopcoat  Action = "topcoat"
	ActionSkimCoat Action = "skim_coat"
	ActionOther    Action = "other"
)

// actionRule maps Swedish word forms to an action. Verb is the canonical
// form used when rendering an intent back to a description. Rank is the
// position in the canonical work pipeline
// (wash, joint-fill, skim-coat, prime, paint, seal); composite utterances
// are ordered by rank regardless of mention order.
type actionRule struct {
	action Action
	verb   string
	rank   int
	forms  []string
}

// Rules are evaluated in order; the first rule containing the token wins.
// More specific verbs come before the generic "måla" forms so that
// "grundmåla" is never swallowed by the paint rule.
var actionRules = []actionRule{
	{action: ActionOther, verb: "tvätta", rank: 0, forms: []string{"tvätta", "tvätt", "tvättning", "rengöra", "rengör"}},
	{action: ActionOther, verb: "skarvspackla", rank: 1, forms: []string{"skarvspackla", "skarvspackling", "remsa", "remsning"}},
	{action: ActionSkimCoat, verb: "bredspackla", rank: 2, forms: []string{"bredspackla", "bredspackling", "spackla", "spackling", "skimspackla"}},
	{action: ActionPrime, verb: "grundmåla", rank: 3, forms: []string{"grundmåla", "grundmålning", "grunda", "grundning", "primer", "grundfärg"}},
	{action: ActionTopcoat, verb: "täckmåla", rank: 5, forms: []string{"täckmåla", "täckmålning", "slutstryka", "slutstrykning", "färdigstryka", "slutmåla"}},
	{action: ActionOther, verb: "lackera", rank: 6, forms: []string{"lackera", "lacka", "lackning", "försegla"}},
	{action: ActionPaint, verb: "måla", rank: 4, forms: []string{"måla", "målas", "målar", "målning", "stryka", "strykning", "stryk"}},
}

// surfaceRule maps singular, plural and definite Swedish forms to a surface
// tag. Noun is the canonical plural used when rendering descriptions.
type surfaceRule struct {
	surface catalog.Surface
	noun    string
	forms   []string
}

var surfaceRules = []surfaceRule{
	{surface: catalog.SurfaceWall, noun: "väggar", forms: []string{"vägg", "väggen", "väggar", "väggarna"}},
	{surface: catalog.SurfaceCeiling, noun: "tak", forms: []string{"tak", "taket", "innertak", "innertaket"}},
	{surface: catalog.SurfaceFloor, noun: "golv", forms: []string{"golv", "golvet"}},
	{surface: catalog.SurfaceDoor, noun: "dörrar", forms: []string{"dörr", "dörren", "dörrar", "dörrarna"}},
	{surface: catalog.SurfaceWindow, noun: "fönster", forms: []string{"fönster", "fönstret", "fönstren"}},
	{surface: catalog.SurfaceTrim, noun: "lister", forms: []string{"list", "lister", "listerna", "golvlist", "golvlister", "taklist", "taklister", "foder", "karm", "karmar", "snickerier"}},
}

// layerWords follow a number to give a coat count: "två lager", "2 gånger".
var layerWords = map[string]struct{}{
	"lager":       {},
	"gång":        {},
	"gånger":      {},
	"strykning":   {},
	"strykningar": {},
	"varv":        {},
}

// quantityWords are scalar multipliers applied to the resolved quantity.
var quantityWords = map[string]float64{
	"halva":   0.5,
	"halv":    0.5,
	"hälften": 0.5,
	"dubbla":  2,
	"dubbelt": 2,
}

func lookupAction(token string) (actionRule, bool) {
	for _, rule := range actionRules {
		for _, form := range rule.forms {
			if token == form {
				return rule, true
			}
		}
	}
	return actionRule{}, false
}

func lookupSurface(token string) (surfaceRule, bool) {
	for _, rule := range surfaceRules {
		for _, form := range rule.forms {
			if token == form {
				return rule, true
			}
		}
	}
	return surfaceRule{}, false
}

// SurfaceNoun returns the canonical Swedish plural for a surface tag, used
// when rendering intents and prompts.
func SurfaceNoun(surface catalog.Surface) string {
	for _, rule := range surfaceRules {
		if rule.surface == surface {
			return rule.noun
		}
	}
	return string(surface)
}
