// Package corpus holds the fixed name and surname tables used for
// employee synthesis. The tables are package-level constants in spirit:
// loaded once, never mutated.
package corpus

// MaleNames is the fixed corpus of male given names.
var MaleNames = []string{
	"Adam", "Aleš", "Antonín", "David", "Dominik", "Daniel", "Filip",
	"František", "Jakub", "Jan", "Jaroslav", "Jiří", "Josef", "Kamil",
	"Karel", "Ladislav", "Libor", "Lukáš", "Marek", "Martin", "Matěj",
	"Michal", "Milan", "Miroslav", "Ondřej", "Patrik", "Pavel", "Petr",
	"Radek", "Richard", "Roman", "Stanislav", "Šimon", "Tomáš", "Václav",
	"Vít", "Vladimír", "Vojtěch", "Zdeněk",
}

// FemaleNames is the fixed corpus of female given names.
var FemaleNames = []string{
	"Adéla", "Alena", "Aneta", "Anna", "Barbora", "Dana", "Denisa",
	"Eliška", "Eva", "Hana", "Ivana", "Jana", "Jarmila", "Jitka",
	"Kamila", "Karolína", "Kateřina", "Klára", "Kristýna", "Lenka",
	"Lucie", "Ludmila", "Marie", "Markéta", "Martina", "Michaela",
	"Monika", "Natálie", "Nikola", "Pavla", "Petra", "Simona", "Šárka",
	"Tereza", "Veronika", "Vendula", "Zuzana",
}

// Surnames is the fixed surname corpus shared by both genders.
var Surnames = []string{
	"Bartoš", "Beneš", "Černý", "Doležal", "Dvořák", "Fiala", "Hájek",
	"Holub", "Horák", "Jelínek", "Kadlec", "Kolář", "Konečný", "Kopecký",
	"Král", "Krejčí", "Kučera", "Liška", "Marek", "Mareš", "Navrátil",
	"Němec", "Novák", "Novotný", "Pokorný", "Polák", "Procházka", "Růžička",
	"Sedláček", "Soukup", "Svoboda", "Šimek", "Urban", "Vaněk", "Veselý",
	"Zeman",
}
