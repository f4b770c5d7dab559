package fuji

// Hut is a mountain hut on one of the ascent routes.
type Hut struct {
	Name       string `json:"name"`
	ElevationM int    `json:"elevation_m"`
}

// GearItem is one entry of the static equipment catalog.
type GearItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	WeightKg float64 `json:"weight_kg"`
}

// GearCategory groups catalog items under a weighted category.
type GearCategory struct {
	Key    string     `json:"key"`
	Name   string     `json:"name"`
	Weight float64    `json:"weight"`
	Items  []GearItem `json:"items"`
}

// MountainHuts maps route name to its huts ordered by elevation.
var MountainHuts = map[string][]Hut{
	"吉田ルート": {
		{Name: "七合目トモエ館", ElevationM: 2740},
		{Name: "七合目鎌岩館", ElevationM: 2790},
		{Name: "七合目富士一館", ElevationM: 2800},
		{Name: "八合目太子館", ElevationM: 3100},
		{Name: "八合目蓬莱館", ElevationM: 3150},
		{Name: "八合目白雲荘", ElevationM: 3200},
		{Name: "八合目元祖室", ElevationM: 3250},
		{Name: "本八合目トモエ館", ElevationM: 3400},
	},
	"富士宮ルート": {
		{Name: "六合目雲海荘", ElevationM: 2490},
		{Name: "新七合目御来光山荘", ElevationM: 2780},
		{Name: "元祖七合目山口山荘", ElevationM: 3010},
		{Name: "八合目池田館", ElevationM: 3250},
		{Name: "九合目万年雪山荘", ElevationM: 3460},
		{Name: "九合五勺胸突山荘", ElevationM: 3590},
	},
	"須走ルート": {
		{Name: "七合目大陽館", ElevationM: 2700},
		{Name: "七合目見晴館", ElevationM: 2750},
		{Name: "本七合目江戸屋", ElevationM: 2960},
		{Name: "八合目江戸屋", ElevationM: 3350},
	},
	"御殿場ルート": {
		{Name: "七合五勺わらじ館", ElevationM: 3050},
		{Name: "赤岩八合館", ElevationM: 3300},
	},
}

// GearCategories is the static checklist catalog. Order matters for display.
var GearCategories = []GearCategory{
	{
		Key:    "essential",
		Name:   "必須装備",
		Weight: EssentialGearWeight,
		Items: []GearItem{
			{ID: "boots", Name: "登山靴（ハイカット）", WeightKg: 1.2},
			{ID: "rain_jacket", Name: "レインウェア（上）", WeightKg: 0.3},
			{ID: "rain_pants", Name: "レインウェア（下）", WeightKg: 0.25},
			{ID: "headlamp", Name: "ヘッドランプ", WeightKg: 0.15},
			{ID: "warm_clothes", Name: "防寒着", WeightKg: 0.5},
			{ID: "gloves", Name: "手袋", WeightKg: 0.1},
			{ID: "water", Name: "水（2L以上）", WeightKg: 2.0},
			{ID: "food", Name: "行動食", WeightKg: 0.5},
			{ID: "backpack", Name: "ザック", WeightKg: 1.0},
		},
	},
	{
		Key:    "recommended",
		Name:   "推奨装備",
		Weight: RecommendedGearWeight,
		Items: []GearItem{
			{ID: "sunglasses", Name: "サングラス", WeightKg: 0.05},
			{ID: "sunscreen", Name: "日焼け止め", WeightKg: 0.1},
			{ID: "first_aid", Name: "救急セット", WeightKg: 0.3},
			{ID: "poles", Name: "トレッキングポール", WeightKg: 0.5},
		},
	},
	{
		Key:    "seasonal",
		Name:   "季節装備",
		Weight: SeasonalGearWeight,
		Items: []GearItem{
			{ID: "cool_shirt", Name: "速乾性シャツ", WeightKg: 0.2},
			{ID: "salt_tablet", Name: "塩分タブレット", WeightKg: 0.05},
		},
	},
}

// FindHut returns the hut with the given name on the route.
func FindHut(route, name string) (Hut, bool) {
	for _, h := range MountainHuts[route] {
		if h.Name == name {
			return h, true
		}
	}
	return Hut{}, false
}

// StartElevation returns the fifth-station elevation for a route,
// defaulting to the Yoshida route for unknown names.
func StartElevation(route string) int {
	if e, ok := RouteStartElevations[route]; ok {
		return e
	}
	return DefaultStartElevationM
}
