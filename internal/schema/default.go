package schema

import "exclusion-diagnostic/internal/answers"

func dep(indicatorID string, cond Condition, value answers.Value) *DependencyRule {
	return &DependencyRule{IndicatorID: indicatorID, Condition: cond, Value: value}
}

// Default returns a fresh copy of the compiled-in diagnostic schema:
// eight dimensions covering the life areas of the multidimensional
// social-exclusion model. Callers get their own copy on every call, so a
// stored admin override can replace it without aliasing trouble.
func Default() *Schema {
	return &Schema{Dimensions: []Dimension{
		{
			ID:          "dim1",
			Title:       "Economic",
			Description: "Income, employment and material deprivation",
			Subdimensions: []Subdimension{
				{
					ID:    "sub1_1",
					Title: "Employment",
					Indicators: []Indicator{
						{
							ID:    "ind1_1_1",
							Label: "Current employment situation",
							Type:  TypeSelect,
							Options: []string{
								"employed_stable", "employed_precarious",
								"unemployed_under_1y", "unemployed_over_1y", "inactive",
							},
							Severity: map[string]float64{
								"employed_stable":     0,
								"employed_precarious": 1,
								"unemployed_under_1y": 2,
								"unemployed_over_1y":  4,
								"inactive":            3,
							},
						},
						{
							ID:        "ind1_1_2",
							Label:     "Months since last contract ended",
							Type:      TypeNumber,
							Help:      "Approximate if the person cannot recall the exact date.",
							DependsOn: dep("ind1_1_1", CondIncludes, answers.List("unemployed_under_1y", "unemployed_over_1y")),
						},
						{
							ID:        "ind1_1_3",
							Label:     "Registered as a job seeker",
							Type:      TypeBoolean,
							DependsOn: dep("ind1_1_1", CondNotEquals, answers.String("employed_stable")),
							Severity:  map[string]float64{"no": 2, "yes": 0},
						},
					},
				},
				{
					ID:    "sub1_2",
					Title: "Income and debt",
					Indicators: []Indicator{
						{
							ID:    "ind1_2_1",
							Label: "Main income source",
							Type:  TypeChips,
							Options: []string{
								"salary", "unemployment_benefit", "minimum_income",
								"informal", "none",
							},
							Severity: map[string]float64{
								"salary": 0, "unemployment_benefit": 1,
								"minimum_income": 2, "informal": 3, "none": 4,
							},
						},
						{
							ID:    "ind1_2_2",
							Label: "Household monthly income (EUR)",
							Type:  TypeRange,
							Min:   ptr(0),
							Max:   ptr(5000),
						},
						{
							ID:    "ind1_2_3",
							Label: "Debt burden on household budget",
							Type:  TypeScale,
							Help:  "1 = no debt pressure, 5 = unpayable debt",
						},
					},
				},
			},
			Risks: []RiskFlag{
				{ID: "risk_d1_1", Label: "Long-term unemployment (over 12 months)"},
				{ID: "risk_d1_2", Label: "Severe over-indebtedness"},
				{ID: "risk_d1_3", Label: "No income source of any kind"},
			},
			Potentialities: []PotentialityFlag{
				{ID: "pot_d1_1", Label: "Recent work experience"},
				{ID: "pot_d1_2", Label: "Vocational qualification"},
			},
		},
		{
			ID:          "dim2",
			Title:       "Housing",
			Description: "Housing access, stability and conditions",
			Subdimensions: []Subdimension{
				{
					ID:    "sub2_1",
					Title: "Housing situation",
					Indicators: []Indicator{
						{
							ID:    "ind2_1_1",
							Label: "Current housing type",
							Type:  TypeSelect,
							Options: []string{
								"owned", "rented", "subleased_room", "hosted_by_relatives",
								"institution", "street",
							},
							Severity: map[string]float64{
								"owned": 0, "rented": 0, "subleased_room": 2,
								"hosted_by_relatives": 2, "institution": 3, "street": 4,
							},
						},
						{
							ID:        "ind2_1_2",
							Label:     "Eviction proceedings open",
							Type:      TypeBoolean,
							DependsOn: dep("ind2_1_1", CondIncludes, answers.List("owned", "rented")),
							Severity:  map[string]float64{"yes": 4, "no": 0},
						},
						{
							ID:        "ind2_1_3",
							Label:     "Time in current situation",
							Type:      TypeChips,
							Options:   []string{"under_3m", "3m_to_1y", "over_1y"},
							DependsOn: dep("ind2_1_1", CondEquals, answers.String("street")),
						},
					},
				},
				{
					ID:    "sub2_2",
					Title: "Habitability and cost",
					Indicators: []Indicator{
						{
							ID:    "ind2_2_1",
							Label: "Share of income spent on housing",
							Type:  TypeChips,
							Options: []string{
								"under_30", "30_to_50", "over_50",
							},
							Severity: map[string]float64{"under_30": 0, "30_to_50": 2, "over_50": 4},
						},
						{
							ID:    "ind2_2_2",
							Label: "Deficiencies present",
							Type:  TypeMultiChips,
							Options: []string{
								"dampness", "no_heating", "overcrowding", "unsafe_structure",
							},
						},
						{
							ID:       "ind2_2_3",
							Label:    "Utility supply cut in the last year",
							Type:     TypeBoolean,
							Severity: map[string]float64{"yes": 3, "no": 0},
						},
					},
				},
			},
			Risks: []RiskFlag{
				{ID: "risk_d2_1", Label: "Precarious housing"},
				{ID: "risk_d2_2", Label: "Homelessness"},
				{ID: "risk_d2_3", Label: "Excessive housing cost burden"},
			},
			Potentialities: []PotentialityFlag{
				{ID: "pot_d2_1", Label: "Stable tenancy history"},
			},
		},
		{
			ID:          "dim3",
			Title:       "Health",
			Description: "Physical health, disability and access to care",
			Subdimensions: []Subdimension{
				{
					ID:    "sub3_1",
					Title: "General health",
					Indicators: []Indicator{
						{
							ID:    "ind3_1_1",
							Label: "Self-reported health status",
							Type:  TypeScale,
							Help:  "1 = very poor, 5 = very good",
						},
						{
							ID:       "ind3_1_2",
							Label:    "Chronic illness diagnosed",
							Type:     TypeBoolean,
							Severity: map[string]float64{"yes": 2, "no": 0},
						},
						{
							ID:        "ind3_1_3",
							Label:     "Illness limits daily activity",
							Type:      TypeBoolean,
							DependsOn: dep("ind3_1_2", CondEquals, answers.Bool(true)),
							Severity:  map[string]float64{"yes": 3, "no": 0},
						},
					},
				},
				{
					ID:    "sub3_2",
					Title: "Access to care",
					Indicators: []Indicator{
						{
							ID:       "ind3_2_1",
							Label:    "Has health coverage",
							Type:     TypeBoolean,
							Severity: map[string]float64{"no": 4, "yes": 0},
						},
						{
							ID:       "ind3_2_2",
							Label:    "Treatment abandoned for economic reasons",
							Type:     TypeBoolean,
							Severity: map[string]float64{"yes": 3, "no": 0},
						},
						{
							ID:    "ind3_2_3",
							Label: "Date of last medical check",
							Type:  TypeDate,
						},
					},
				},
			},
			Risks: []RiskFlag{
				{ID: "risk_d3_1", Label: "Untreated serious illness"},
				{ID: "risk_d3_2", Label: "No health coverage"},
			},
			Potentialities: []PotentialityFlag{
				{ID: "pot_d3_1", Label: "Adherence to ongoing treatment"},
			},
		},
		{
			ID:          "dim4",
			Title:       "Mental health",
			Description: "Psychological wellbeing, addictions and emotional state",
			Subdimensions: []Subdimension{
				{
					ID:    "sub4_1",
					Title: "Emotional state",
					Indicators: []Indicator{
						{
							ID:    "ind4_1_1",
							Label: "Mood over the last month",
							Type:  TypeChips,
							Options: []string{
								"stable", "anxious", "depressed", "hopeless",
							},
							Severity: map[string]float64{
								"stable": 0, "anxious": 2, "depressed": 3, "hopeless": 4,
							},
						},
						{
							ID:        "ind4_1_2",
							Label:     "Receiving psychological support",
							Type:      TypeBoolean,
							DependsOn: dep("ind4_1_1", CondIncludes, answers.List("anxious", "depressed", "hopeless")),
							Severity:  map[string]float64{"no": 2, "yes": 0},
						},
						{
							ID:    "ind4_1_3",
							Label: "Observations on emotional state",
							Type:  TypeText,
						},
					},
				},
				{
					ID:    "sub4_2",
					Title: "Addictions",
					Indicators: []Indicator{
						{
							ID:       "ind4_2_1",
							Label:    "Active substance use problem",
							Type:     TypeBoolean,
							Severity: map[string]float64{"yes": 3, "no": 0},
						},
						{
							ID:        "ind4_2_2",
							Label:     "In treatment for substance use",
							Type:      TypeBoolean,
							DependsOn: dep("ind4_2_1", CondEquals, answers.Bool(true)),
							Severity:  map[string]float64{"no": 2, "yes": 0},
						},
					},
				},
			},
			Risks: []RiskFlag{
				{ID: "risk_d4_1", Label: "Active suicidal ideation"},
				{ID: "risk_d4_2", Label: "Severe untreated addiction"},
			},
			Potentialities: []PotentialityFlag{
				{ID: "pot_d4_1", Label: "Motivation for change"},
			},
		},
		{
			ID:          "dim5",
			Title:       "Education",
			Description: "Educational attainment, ongoing training, minors' schooling",
			Subdimensions: []Subdimension{
				{
					ID:    "sub5_1",
					Title: "Attainment",
					Indicators: []Indicator{
						{
							ID:    "ind5_1_1",
							Label: "Highest completed level",
							Type:  TypeSelect,
							Options: []string{
								"none", "primary", "secondary", "vocational", "higher",
							},
							Severity: map[string]float64{
								"none": 4, "primary": 3, "secondary": 1,
								"vocational": 0, "higher": 0,
							},
						},
						{
							ID:       "ind5_1_2",
							Label:    "Functional literacy difficulties",
							Type:     TypeBoolean,
							Severity: map[string]float64{"yes": 3, "no": 0},
						},
					},
				},
				{
					ID:    "sub5_2",
					Title: "Minors' schooling",
					Indicators: []Indicator{
						{
							ID:    "ind5_2_1",
							Label: "School-age minors in household",
							Type:  TypeBoolean,
						},
						{
							ID:        "ind5_2_2",
							Label:     "Unjustified absences reported",
							Type:      TypeBoolean,
							DependsOn: dep("ind5_2_1", CondEquals, answers.Bool(true)),
							Severity:  map[string]float64{"yes": 4, "no": 0},
						},
					},
				},
			},
			Risks: []RiskFlag{
				{ID: "risk_d5_1", Label: "School absenteeism"},
				{ID: "risk_d5_2", Label: "Early school dropout"},
			},
			Potentialities: []PotentialityFlag{
				{ID: "pot_d5_1", Label: "Interest in further training"},
			},
		},
		{
			ID:          "dim6",
			Title:       "Relationships",
			Description: "Family, social network and community support",
			Subdimensions: []Subdimension{
				{
					ID:    "sub6_1",
					Title: "Support network",
					Indicators: []Indicator{
						{
							ID:    "ind6_1_1",
							Label: "People the person can rely on",
							Type:  TypeChips,
							Options: []string{
								"family_and_friends", "family_only", "friends_only", "nobody",
							},
							Severity: map[string]float64{
								"family_and_friends": 0, "family_only": 1,
								"friends_only": 1, "nobody": 4,
							},
						},
						{
							ID:        "ind6_1_2",
							Label:     "Frequency of social contact",
							Type:      TypeChips,
							Options:   []string{"weekly", "monthly", "rarely"},
							DependsOn: dep("ind6_1_1", CondNotEquals, answers.String("nobody")),
							Severity:  map[string]float64{"weekly": 0, "monthly": 1, "rarely": 3},
						},
					},
				},
				{
					ID:    "sub6_2",
					Title: "Family situation",
					Indicators: []Indicator{
						{
							ID:       "ind6_2_1",
							Label:    "Serious family conflict present",
							Type:     TypeBoolean,
							Severity: map[string]float64{"yes": 3, "no": 0},
						},
						{
							ID:    "ind6_2_2",
							Label: "Household composition notes",
							Type:  TypeText,
						},
					},
				},
			},
			Risks: []RiskFlag{
				{ID: "risk_d6_1", Label: "Complete social isolation"},
				{ID: "risk_d6_2", Label: "Family violence"},
				{ID: "risk_d6_3", Label: "Family breakdown"},
			},
			Potentialities: []PotentialityFlag{
				{ID: "pot_d6_1", Label: "Supportive family member involved"},
			},
		},
		{
			ID:          "dim7",
			Title:       "Civic participation",
			Description: "Community involvement and access to public services",
			Subdimensions: []Subdimension{
				{
					ID:    "sub7_1",
					Title: "Participation",
					Indicators: []Indicator{
						{
							ID:       "ind7_1_1",
							Label:    "Takes part in community activities",
							Type:     TypeBoolean,
							Severity: map[string]float64{"no": 1, "yes": 0},
						},
						{
							ID:    "ind7_1_2",
							Label: "Barriers to participation",
							Type:  TypeMultiChips,
							Options: []string{
								"language", "cost", "discrimination", "lack_of_information",
							},
							DependsOn: dep("ind7_1_1", CondEquals, answers.Bool(false)),
						},
						{
							ID:       "ind7_1_3",
							Label:    "Knows how to reach social services",
							Type:     TypeBoolean,
							Severity: map[string]float64{"no": 2, "yes": 0},
						},
					},
				},
			},
			Risks: []RiskFlag{
				{ID: "risk_d7_1", Label: "Disconnected from all support services"},
			},
			Potentialities: []PotentialityFlag{
				{ID: "pot_d7_1", Label: "Active in a community organisation"},
			},
		},
		{
			ID:          "dim8",
			Title:       "Legal status",
			Description: "Administrative and documentation situation",
			Subdimensions: []Subdimension{
				{
					ID:    "sub8_1",
					Title: "Documentation",
					Indicators: []Indicator{
						{
							ID:    "ind8_1_1",
							Label: "Administrative situation",
							Type:  TypeSelect,
							Options: []string{
								"citizen", "residence_permit", "permit_in_renewal",
								"irregular", "asylum_pending",
							},
							Severity: map[string]float64{
								"citizen": 0, "residence_permit": 0,
								"permit_in_renewal": 2, "irregular": 4, "asylum_pending": 3,
							},
						},
						{
							ID:        "ind8_1_2",
							Label:     "Renewal deadline",
							Type:      TypeDate,
							DependsOn: dep("ind8_1_1", CondEquals, answers.String("permit_in_renewal")),
						},
						{
							ID:       "ind8_1_3",
							Label:    "Has valid identity document",
							Type:     TypeBoolean,
							Severity: map[string]float64{"no": 3, "yes": 0},
						},
					},
				},
			},
			Risks: []RiskFlag{
				{ID: "risk_d8_1", Label: "Irregular administrative situation"},
				{ID: "risk_d8_2", Label: "Open judicial proceedings"},
			},
			Potentialities: []PotentialityFlag{
				{ID: "pot_d8_1", Label: "Regularisation pathway available"},
			},
		},
	}}
}

func ptr(f float64) *float64 { return &f }
