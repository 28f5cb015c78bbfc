package identity

// DefaultEntries is the built-in reference table of the cross-era cohort.
// Career bounds are inclusive seasons; Hill and Rosberg require given names
// because Graham Hill and Keke Rosberg raced under the same family names.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Key: "senna", DisplayName: "Ayrton Senna",
			GivenName: "Ayrton", FamilyName: "Senna",
			CareerFrom: 1984, CareerTo: 1994,
		},
		{
			Key: "hill", DisplayName: "Damon Hill",
			GivenName: "Damon", FamilyName: "Hill",
			RequireGivenName: true,
			CareerFrom:       1992, CareerTo: 1999,
		},
		{
			Key: "schumacher", DisplayName: "Michael Schumacher",
			GivenName: "Michael", FamilyName: "Schumacher",
			RequireGivenName: true,
			CareerFrom:       1991, CareerTo: 2012,
		},
		{
			Key: "villeneuve", DisplayName: "Jacques Villeneuve",
			GivenName: "Jacques", FamilyName: "Villeneuve",
			RequireGivenName: true,
			CareerFrom:       1996, CareerTo: 2006,
		},
		{
			Key: "hakkinen", DisplayName: "Mika Häkkinen",
			GivenName: "Mika", FamilyName: "Häkkinen",
			Aliases:    []string{"Mika Hakkinen"},
			CareerFrom: 1991, CareerTo: 2001,
		},
		{
			Key: "coulthard", DisplayName: "David Coulthard",
			GivenName: "David", FamilyName: "Coulthard",
			CareerFrom: 1994, CareerTo: 2008,
		},
		{
			Key: "rosberg", DisplayName: "Nico Rosberg",
			GivenName: "Nico", FamilyName: "Rosberg",
			RequireGivenName: true,
			CareerFrom:       2006, CareerTo: 2016,
		},
		{
			Key: "alonso", DisplayName: "Fernando Alonso",
			GivenName: "Fernando", FamilyName: "Alonso",
			CareerFrom: 2001, CareerTo: 2024,
		},
		{
			Key: "raikkonen", DisplayName: "Kimi Räikkönen",
			GivenName: "Kimi", FamilyName: "Räikkönen",
			Aliases:    []string{"Kimi Raikkonen"},
			CareerFrom: 2001, CareerTo: 2021,
		},
		{
			Key: "hamilton", DisplayName: "Lewis Hamilton",
			GivenName: "Lewis", FamilyName: "Hamilton",
			CareerFrom: 2007, CareerTo: 2024,
		},
		{
			Key: "vettel", DisplayName: "Sebastian Vettel",
			GivenName: "Sebastian", FamilyName: "Vettel",
			CareerFrom: 2007, CareerTo: 2022,
		},
		{
			Key: "verstappen", DisplayName: "Max Verstappen",
			GivenName: "Max", FamilyName: "Verstappen",
			RequireGivenName: true,
			CareerFrom:       2015, CareerTo: 2024,
		},
	}
}

// DefaultRegistry builds the registry over DefaultEntries. The table is
// static and validated, so the error case cannot occur at runtime.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return r
}
