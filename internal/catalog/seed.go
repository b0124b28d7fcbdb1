package catalog

import "github.com/theirongolddev/automarket/internal/model"

// Default returns the built-in catalog used when the default market is empty.
func Default() []model.Car {
	return []model.Car{
		{Manufacturer: "Audi", Model: "R8", Year: 2016, Speed: 8.2, Handling: 7.6, Acceleration: 9.0, Braking: 9.2, DriveType: model.AWD, Price: 242_000},
		{Manufacturer: "Nissan", Model: "GT-R", Year: 2017, Speed: 7.9, Handling: 7.2, Acceleration: 9.6, Braking: 7.6, DriveType: model.AWD, Price: 132_000},
		{Manufacturer: "BMW", Model: "M5", Year: 1988, Speed: 6.5, Handling: 5.3, Acceleration: 6.0, Braking: 5.3, DriveType: model.RWD, Price: 54_000},
		{Manufacturer: "Bugatti", Model: "Veyron", Year: 2011, Speed: 9.9, Handling: 8.0, Acceleration: 9.9, Braking: 8.4, DriveType: model.AWD, Price: 2_200_000},
		{Manufacturer: "Ferrari", Model: "LaFerrari", Year: 2013, Speed: 9.5, Handling: 9.8, Acceleration: 8.2, Braking: 10, DriveType: model.RWD, Price: 1_500_000},
		{Manufacturer: "Lamborghini", Model: "Aventador", Year: 2012, Speed: 8.7, Handling: 7.8, Acceleration: 9.8, Braking: 8.3, DriveType: model.AWD, Price: 310_000},
		{Manufacturer: "Mazda", Model: "MX-5 Miata", Year: 1994, Speed: 5.5, Handling: 4.9, Acceleration: 5.2, Braking: 4.3, DriveType: model.RWD, Price: 25_000},
		{Manufacturer: "Porsche", Model: "911 GT3 RS", Year: 2019, Speed: 8.3, Handling: 9.7, Acceleration: 8.3, Braking: 10, DriveType: model.RWD, Price: 255_000},
		{Manufacturer: "Toyota", Model: "Trueno AE86", Year: 1985, Speed: 5.4, Handling: 4.7, Acceleration: 5.6, Braking: 4.5, DriveType: model.RWD, Price: 22_000},
		{Manufacturer: "Honda", Model: "Civic Type R", Year: 2018, Speed: 7.4, Handling: 6.7, Acceleration: 6.0, Braking: 6.8, DriveType: model.FWD, Price: 59_000},
		{Manufacturer: "Dodge", Model: "Challenger", Year: 2015, Speed: 8.1, Handling: 6.1, Acceleration: 5.9, Braking: 6.5, DriveType: model.RWD, Price: 75_000},
		{Manufacturer: "Chevrolet", Model: "Stingray", Year: 2020, Speed: 7.5, Handling: 7.6, Acceleration: 7.7, Braking: 7.7, DriveType: model.RWD, Price: 87_000},
	}
}
