package rubric

// defaultImpactVerbs is the built-in action-verb list for the impact-verb
// dimension. The dataset document may override it wholesale.
var defaultImpactVerbs = []string{
	"achieved", "architected", "automated", "built", "created", "delivered",
	"designed", "developed", "drove", "implemented", "improved", "increased",
	"launched", "led", "maintained", "managed", "migrated", "optimized",
	"reduced", "refactored", "scaled", "shipped", "streamlined",
}
