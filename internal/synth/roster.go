package synth

import "github.com/nirvachan/onoe-sim/internal/rules"

// NamedSeat is a Lok Sabha seat with explicit base parameters.
type NamedSeat struct {
	Name     string
	Category string
	Params   rules.Params
}

// Zone is a block of consecutively numbered MCD wards.
type Zone struct {
	Name     string
	Start    int
	End      int
	Category string
}

func (z Zone) Wards() int { return z.End - z.Start + 1 }

var LokSabha = []NamedSeat{
	{"Chandni Chowk", "Commercial-Historic", rules.Params{BaseCost: 95, BaseTurnout: 58.5, BaseMCC: 1300}},
	{"North East Delhi", "High-Density", rules.Params{BaseCost: 98, BaseTurnout: 62.1, BaseMCC: 1310}},
	{"East Delhi", "Urban-Mixed", rules.Params{BaseCost: 92, BaseTurnout: 60.4, BaseMCC: 1290}},
	{"New Delhi", "VVIP-Admin", rules.Params{BaseCost: 110, BaseTurnout: 55.2, BaseMCC: 1300}},
	{"North West Delhi", "Rural-Industrial", rules.Params{BaseCost: 85, BaseTurnout: 59.8, BaseMCC: 1400}},
	{"West Delhi", "Residential", rules.Params{BaseCost: 94, BaseTurnout: 61.5, BaseMCC: 1280}},
	{"South Delhi", "Posh-Urban", rules.Params{BaseCost: 105, BaseTurnout: 57.3, BaseMCC: 1320}},
}

// VidhanSabha lists assembly constituencies as "name:category".
var VidhanSabha = []string{
	"Narela:Rural", "Burari:Mixed", "Timarpur:Urban", "Adarsh Nagar:Urban", "Badli:Industrial",
	"Rithala:Residential", "Bawana:Rural", "Mundka:Rural", "Kirari:Unplanned", "Sultanpur Majra:Mixed",
	"Nangloi Jat:Mixed", "Mangolpuri:High-Density", "Rohini:Planned", "Shalimar Bagh:Posh", "Shakur Basti:Urban",
	"Tri Nagar:Congested", "Wazirpur:Industrial", "Model Town:Posh", "Sadar Bazar:Commercial", "Chandni Chowk:Commercial",
	"Matia Mahal:High-Density", "Ballimaran:Commercial", "Karol Bagh:Commercial", "Patel Nagar:Urban", "Moti Nagar:Industrial",
	"Madipur:Residential", "Rajouri Garden:Posh", "Hari Nagar:Residential", "Tilak Nagar:Urban", "Janakpuri:Planned",
	"Vikaspuri:Residential", "Uttam Nagar:High-Density", "Dwarka:Planned", "Matiala:Rural-Urban", "Najafgarh:Rural",
	"Bijwasan:Rural-Mix", "Palam:Urban", "Delhi Cantt:Restricted", "Rajinder Nagar:Urban", "New Delhi:VVIP",
	"Jangpura:Urban", "Kasturba Nagar:Mixed", "Malviya Nagar:Posh", "RK Puram:Govt-Colony", "Mehrauli:Historic",
	"Chhatarpur:Farmhouses", "Deoli:Unplanned", "Ambedkar Nagar:High-Density", "Sangam Vihar:Unplanned", "Greater Kailash:Posh",
	"Kalkaji:Urban", "Tughlakabad:Historic", "Badarpur:Border", "Okhla:Industrial", "Trilokpuri:Resettlement",
	"Kondli:Mixed", "Patparganj:Urban", "Laxmi Nagar:Commercial", "Vishwas Nagar:Mixed", "Krishna Nagar:Congested",
	"Gandhi Nagar:Commercial", "Shahdara:Historic", "Seemapuri:Border", "Rohtas Nagar:Urban", "Seelampur:High-Density",
	"Ghonda:Mixed", "Babarpur:Congested", "Gokalpur:Rural-Mix", "Mustafabad:High-Density", "Karawal Nagar:Unplanned",
}

var Zones = []Zone{
	{"Narela", 1, 16, "Rural"},
	{"Civil Lines", 17, 31, "Urban-Old"},
	{"Rohini", 32, 54, "Planned"},
	{"Keshav Puram", 55, 69, "Industrial"},
	{"City-SP", 70, 82, "Commercial"},
	{"Karol Bagh", 83, 95, "Mixed"},
	{"West", 96, 120, "Residential"},
	{"Najafgarh", 121, 150, "Rural-Urban"},
	{"South", 151, 175, "Posh"},
	{"Central", 176, 200, "Govt"},
	{"Shahdara South", 201, 225, "Congested"},
	{"Shahdara North", 226, 250, "High-Density"},
}
