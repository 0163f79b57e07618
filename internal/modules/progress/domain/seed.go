package domain

// DefaultItems is the syllabus checklist shown before anything is stored.
func DefaultItems() []Item {
	return []Item{
		{ID: "q1", Label: "Progression & Series", Category: CategoryQuants},
		{ID: "q2", Label: "Functions", Category: CategoryQuants},
		{ID: "q3", Label: "Modulus", Category: CategoryQuants},
		{ID: "q4", Label: "Inequalities", Category: CategoryQuants},
		{ID: "q5", Label: "Algebra - Quadratic & Higher Degrees", Category: CategoryQuants},
		{ID: "q6", Label: "Algebra - Linear Equations", Category: CategoryQuants},
		{ID: "q7", Label: "Indices", Category: CategoryQuants},
		{ID: "q8", Label: "Minima & Maxima", Category: CategoryQuants},
		{ID: "q9", Label: "Identities", Category: CategoryQuants},
		{ID: "q10", Label: "Arithmetic - Ratio, Proportion & Variation", Category: CategoryQuants},
		{ID: "q11", Label: "Arithmetic - Time, Speed & Distance", Category: CategoryQuants},
		{ID: "q12", Label: "Arithmetic - Mean, Median & Mode", Category: CategoryQuants},
		{ID: "q13", Label: "Arithmetic - Simple & Compound Interest", Category: CategoryQuants},
		{ID: "q14", Label: "Arithmetic - Profit & Loss", Category: CategoryQuants},
		{ID: "q15", Label: "Arithmetic - Averages", Category: CategoryQuants},
		{ID: "q16", Label: "Arithmetic - Mixtures & Alligation", Category: CategoryQuants},
		{ID: "q17", Label: "Arithmetic - Time & Work", Category: CategoryQuants},
		{ID: "q18", Label: "Trigonometry", Category: CategoryQuants},
		{ID: "q19", Label: "Geometry - Triangles", Category: CategoryQuants},
		{ID: "q20", Label: "Geometry - Circles", Category: CategoryQuants},
		{ID: "q21", Label: "Geometry - Straight Lines", Category: CategoryQuants},
		{ID: "q22", Label: "Geometry - Quadrilaterals", Category: CategoryQuants},
		{ID: "q23", Label: "Geometry - Solids", Category: CategoryQuants},
		{ID: "q24", Label: "Geometry - Polygons", Category: CategoryQuants},
		{ID: "q25", Label: "Conic Sections", Category: CategoryQuants},
		{ID: "q26", Label: "Modern Math - Permutation & Combination", Category: CategoryQuants},
		{ID: "q27", Label: "Modern Math - Set Theory", Category: CategoryQuants},
		{ID: "q28", Label: "Modern Math - Probability", Category: CategoryQuants},
		{ID: "q29", Label: "Modern Math - Matrices & Determinants", Category: CategoryQuants},
		{ID: "q30", Label: "Logarithm", Category: CategoryQuants},
		{ID: "q31", Label: "Binomial Theorem", Category: CategoryQuants},
		{ID: "q32", Label: "Number System - Divisibility Rules", Category: CategoryQuants},
		{ID: "q33", Label: "Number System - Remainder", Category: CategoryQuants},
		{ID: "q34", Label: "Number System - Factorials", Category: CategoryQuants},
		{ID: "q35", Label: "Number System - Integral Solutions", Category: CategoryQuants},
		{ID: "q36", Label: "Number System - Unit Digits", Category: CategoryQuants},
		{ID: "q37", Label: "Number System - HCF & LCM", Category: CategoryQuants},
		{ID: "l1", Label: "LRDI - Allocations & Arrangement", Category: CategoryQuants},
		{ID: "l2", Label: "LRDI - Tournaments", Category: CategoryQuants},
		{ID: "l3", Label: "LRDI - Bar Graphs", Category: CategoryQuants},
		{ID: "l4", Label: "LRDI - Tabular Data", Category: CategoryQuants},
		{ID: "l5", Label: "LRDI - Weights", Category: CategoryQuants},
		{ID: "v1", Label: "Reading Comprehension", Category: CategoryVerbal},
		{ID: "v2", Label: "Fill-ups: Idioms, Phrases & Words", Category: CategoryVerbal},
		{ID: "v3", Label: "Fill-ups: Phrasal Verbs", Category: CategoryVerbal},
		{ID: "v4", Label: "Sentence Correction (Grammar)", Category: CategoryVerbal},
		{ID: "v5", Label: "Paracompletion", Category: CategoryVerbal},
		{ID: "v6", Label: "Vocabulary", Category: CategoryVerbal},
		{ID: "v7", Label: "Incorrect Word Usage", Category: CategoryVerbal},
		{ID: "v8", Label: "Parajumbles", Category: CategoryVerbal},
	}
}
