package nuban

import "maps"

// banks maps CBN bank codes to bank names. It is never written after init.
var banks = map[string]string{
	"044": "Access Bank",
	"014": "Afribank",
	"023": "Citibank",
	"063": "Diamond Bank",
	"050": "Ecobank",
	"040": "Equitorial Trust Bank",
	"011": "First Bank",
	"214": "FCMB",
	"070": "Fidelity",
	"085": "FinBank",
	"058": "Guaranty Trust Bank",
	"069": "Intercontinental Bank",
	"056": "Oceanic Bank",
	"082": "BankPhb",
	"076": "Skye Bank",
	"084": "SpringBank",
	"221": "StanbicIBTC",
	"068": "Standard Chartered Bank",
	"232": "Sterling Bank",
	"033": "United Bank For Africa",
	"032": "Union Bank",
	"035": "Wema Bank",
	"057": "Zenith Bank",
	"215": "Unity Bank",
}

// LookupBank returns the name registered for code.
func LookupBank(code string) (string, bool) {
	name, ok := banks[code]
	return name, ok
}

// Banks returns a copy of the bank directory. Changes to the returned map
// do not affect lookups.
func Banks() map[string]string {
	return maps.Clone(banks)
}
