package dataset

/*
BuysComputer returns the 14 rows customer dataset commonly used to
illustrate ID3, predicting whether a customer buys a computer from its
age, income, student status and credit rating.
*/
func BuysComputer() *Dataset {
	return &Dataset{
		Attributes: []string{"age", "income", "student", "credit_rating"},
		Class:      "buys_computer",
		Table: Table{
			{"youth", "high", "no", "fair", "no"},
			{"youth", "high", "no", "excellent", "no"},
			{"middle_aged", "high", "no", "fair", "yes"},
			{"senior", "medium", "no", "fair", "yes"},
			{"senior", "low", "yes", "fair", "yes"},
			{"senior", "low", "yes", "excellent", "no"},
			{"middle_aged", "low", "yes", "excellent", "yes"},
			{"youth", "medium", "no", "fair", "no"},
			{"youth", "low", "yes", "fair", "yes"},
			{"senior", "medium", "yes", "fair", "yes"},
			{"youth", "medium", "yes", "excellent", "yes"},
			{"middle_aged", "medium", "no", "excellent", "yes"},
			{"middle_aged", "high", "yes", "fair", "yes"},
			{"senior", "medium", "no", "excellent", "no"},
		},
	}
}
