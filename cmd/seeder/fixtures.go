package main

import "huduma_finder/internal/domain"

// seedProviders is the starter directory for Dar es Salaam. It keeps
// searches useful when the live OSM source is down or has no coverage
// for a service.
var seedProviders = []domain.Provider{
	{
		ID: "dir_rest_001", Name: "Mamboz Corner BBQ", ServiceType: "restaurant",
		Location:   domain.Location{Latitude: -6.8135, Longitude: 39.2863, Landmark: "Morogoro Road"},
		PriceRange: domain.PriceRange{Min: 5, Max: 20}, Rating: 4.5,
		Description:    "grilled chicken and mishkaki",
		ContactInfo:    "+255 754 242 525",
		OperatingHours: "Mo-Su 17:00-23:00",
	},
	{
		ID: "dir_rest_002", Name: "Samaki Samaki", ServiceType: "restaurant",
		Location:   domain.Location{Latitude: -6.7602, Longitude: 39.2768, Landmark: "Masaki"},
		PriceRange: domain.PriceRange{Min: 15, Max: 60}, Rating: 4.3,
		Description:    "seafood and swahili dishes",
		OperatingHours: "Mo-Su 12:00-23:00",
	},
	{
		ID: "dir_rest_003", Name: "Kariakoo Mama Lishe", ServiceType: "restaurant",
		Location:   domain.Location{Latitude: -6.8190, Longitude: 39.2725, Landmark: "Kariakoo Market"},
		PriceRange: domain.PriceRange{Min: 2, Max: 8}, Rating: 4.1,
		Description: "local plates, wali maharage",
	},
	{
		ID: "dir_med_001", Name: "Muhimbili National Hospital", ServiceType: "medical",
		Location:   domain.Location{Latitude: -6.8015, Longitude: 39.2719, Landmark: "Upanga"},
		PriceRange: domain.PriceRange{Min: 10, Max: 200}, Rating: 4.0,
		ContactInfo:    "+255 22 215 1599",
		OperatingHours: "24/7",
	},
	{
		ID: "dir_med_002", Name: "Aga Khan Hospital", ServiceType: "medical",
		Location:   domain.Location{Latitude: -6.8048, Longitude: 39.2884, Landmark: "Ocean Road"},
		PriceRange: domain.PriceRange{Min: 30, Max: 400}, Rating: 4.4,
		ContactInfo:    "+255 22 211 5151",
		OperatingHours: "24/7",
	},
	{
		ID: "dir_auto_001", Name: "Gerezani Auto Garage", ServiceType: "auto_repair",
		Location:   domain.Location{Latitude: -6.8231, Longitude: 39.2841, Landmark: "Gerezani"},
		PriceRange: domain.PriceRange{Min: 20, Max: 200}, Rating: 3.9,
		Description: "engine and suspension work",
	},
	{
		ID: "dir_auto_002", Name: "Kinondoni Tyre Centre", ServiceType: "auto_repair",
		Location:   domain.Location{Latitude: -6.7812, Longitude: 39.2532, Landmark: "Kinondoni"},
		PriceRange: domain.PriceRange{Min: 10, Max: 120}, Rating: 4.0,
		OperatingHours: "Mo-Sa 08:00-18:00",
	},
	{
		ID: "dir_hair_001", Name: "Blessed Beauty Salon", ServiceType: "hair_salon",
		Location:   domain.Location{Latitude: -6.7760, Longitude: 39.2280, Landmark: "Mwenge"},
		PriceRange: domain.PriceRange{Min: 5, Max: 50}, Rating: 4.2,
		OperatingHours: "Mo-Su 09:00-20:00",
	},
	{
		ID: "dir_plumb_001", Name: "Fundi Bomba Services", ServiceType: "plumbing",
		Location:   domain.Location{Latitude: -6.7955, Longitude: 39.2440, Landmark: "Sinza"},
		PriceRange: domain.PriceRange{Min: 10, Max: 80}, Rating: 3.8,
		ContactInfo: "+255 713 333 444",
	},
	{
		ID: "dir_elec_001", Name: "Umeme Fix Electricians", ServiceType: "electrical",
		Location:   domain.Location{Latitude: -6.8107, Longitude: 39.2604, Landmark: "Ilala"},
		PriceRange: domain.PriceRange{Min: 10, Max: 80}, Rating: 3.9,
	},
	{
		ID: "dir_clean_001", Name: "Safi Laundry & Dry Cleaning", ServiceType: "cleaning",
		Location:   domain.Location{Latitude: -6.7735, Longitude: 39.2650, Landmark: "Oyster Bay"},
		PriceRange: domain.PriceRange{Min: 5, Max: 40}, Rating: 4.1,
		OperatingHours: "Mo-Sa 08:00-19:00",
	},
	{
		ID: "dir_tutor_001", Name: "Mlimani Tutoring Centre", ServiceType: "tutoring",
		Location:   domain.Location{Latitude: -6.7724, Longitude: 39.2083, Landmark: "University of Dar es Salaam"},
		PriceRange: domain.PriceRange{Min: 5, Max: 30}, Rating: 4.3,
	},
}
