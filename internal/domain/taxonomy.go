package domain

import "fmt"

// The service taxonomy is fixed: a closed list of top-level categories, each
// with an ordered list of services. Profiles and filters reference entries by
// their Lithuanian label, so the map keys are validated against the category
// list at package load to catch typos early.

var Categories = []string{
	"Automobiliai, transportas",
	"Energetika, žaliavos, kuras",
	"Finansai, teisė, draudimas",
	"Kompiuteriai, IT technologijos",
	"Laisvalaikis, pramogos, turizmas",
	"Maisto produktai, gėrimai, prekyba",
	"Medicina, sveikata, farmacija",
	"Paslaugos",
	"Pramonė, gamyba, įranga",
	"Prekės, prekyba",
	"Reklama, leidyba",
	"Statyba, remontas, medžiagos, NT",
	"Švietimas, ugdymas, kultūra",
	"Valstybinės įstaigos, organizacijos",
	"Žemės ūkis, agrotechnika",
}

var ServicesByCategory = map[string][]string{
	"Automobiliai, transportas": {
		"Automobilių dalys",
		"Automobilių nuoma",
		"Automobilių pervežimas",
		"Automobilių plovyklos",
		"Automobilių remontas",
		"Automobilių techninė apžiūra",
		"Autoservisai",
		"Dviračiai, paspirtukai",
		"Logistikos paslaugos",
		"Pagalba kelyje",
		"Padangos, ratlankiai",
		"Transporto paslaugos",
	},
	"Energetika, žaliavos, kuras": {
		"Antrinės žaliavos",
		"Atliekų tvarkymas",
		"Energetika",
		"Kuras šildymui, malkos",
		"Metalų pardavimas, supirkimas",
	},
	"Finansai, teisė, draudimas": {
		"Antstoliai",
		"Apskaita",
		"Auditas",
		"Buhalterinė apskaita",
		"Draudimas",
		"Konsultacijų paslaugos",
		"Notarų biurai",
		"Skolų išieškojimas",
		"Teisinės paslaugos",
		"Turto vertinimas",
	},
	"Kompiuteriai, IT technologijos": {
		"Interneto paslaugos",
		"Interneto svetainių kūrimas, tvarkymas",
		"Kompiuteriai ir programinė įranga",
		"Kompiuterių remontas, IT paslaugos",
		"Programinės įrangos kūrimas",
		"Telekomunikacijos, ryšio priemonės",
	},
	"Laisvalaikis, pramogos, turizmas": {
		"Kaimo turizmas",
		"Kelionės",
		"Pirtys ir baseinai",
		"Pramogos ir poilsis",
		"Renginių organizavimas",
		"Sporto paslaugos, sporto klubai",
		"Sveikatingumo, SPA centrai",
		"Viešbučiai, moteliai",
	},
	"Maisto produktai, gėrimai, prekyba": {
		"Kava, arbata",
		"Kepyklos",
		"Konditerija, saldumynai",
		"Maisto gamyba",
		"Maitinimo paslaugos",
		"Mėsos perdirbimas, mėsos produktai",
	},
	"Medicina, sveikata, farmacija": {
		"Estetinė medicina",
		"Masažas",
		"Fizioterapija",
		"Medicininiai tyrimai, laboratorijos",
		"Odontologija, paslaugos",
		"Optika, akiniai",
		"Psichologai, psichoterapeutai",
		"Veterinarija",
	},
	"Paslaugos": {
		"Valymo paslaugos",
		"Apsaugos paslaugos",
		"Konsultacijos",
		"Vertimo paslaugos",
		"Dizaino paslaugos",
		"Reklamos paslaugos",
		"Personalo paslaugos",
	},
	"Pramonė, gamyba, įranga": {
		"Pramonės įrangos gamyba",
		"Metalo apdirbimas",
		"Medienos apdirbimas",
		"Tekstilės gamyba",
		"Įrangos remontas",
		"Automatizacijos sprendimai",
	},
	"Prekės, prekyba": {
		"Mažmeninė prekyba",
		"Didmeninė prekyba",
		"Elektronikos prekyba",
		"Namų apyvokos prekės",
		"E. prekyba",
	},
	"Reklama, leidyba": {
		"Reklamos kampanijos",
		"Grafikos dizainas",
		"Spausdinimo paslaugos",
		"Socialinių tinklų valdymas",
		"Turinio kūrimas",
		"Fotografijos paslaugos",
		"Video gamyba",
	},
	"Statyba, remontas, medžiagos, NT": {
		"Bendroji statyba",
		"Namų remontas",
		"Santechnikos darbai",
		"Elektros darbai",
		"Stogų darbai",
		"Grindų klojimas",
		"Dažymo darbai",
		"Nekilnojamojo turto paslaugos",
	},
	"Švietimas, ugdymas, kultūra": {
		"Mokymo paslaugos",
		"Korepetitorių paslaugos",
		"Kalbų kursai",
		"Muzikos pamokos",
		"Meno pamokos",
		"Kultūros renginiai",
	},
	"Valstybinės įstaigos, organizacijos": {
		"Administracinės paslaugos",
		"Dokumentų tvarkymas",
		"Licencijų išdavimas",
		"Registracijos paslaugos",
		"Socialinės paslaugos",
	},
	"Žemės ūkis, agrotechnika": {
		"Augalininkystė",
		"Gyvulininkystė",
		"Žemės ūkio konsultacijos",
		"Žemės ūkio technikos nuoma",
		"Ekologinis ūkininkavimas",
	},
}

var Cities = []string{
	"Vilnius",
	"Kaunas",
	"Klaipėda",
	"Šiauliai",
	"Panevėžys",
	"Alytus",
	"Marijampolė",
	"Mažeikiai",
	"Jonava",
	"Utena",
}

func init() {
	if err := validateTaxonomy(); err != nil {
		panic(err)
	}
}

func validateTaxonomy() error {
	known := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}
	for c := range ServicesByCategory {
		if !known[c] {
			return fmt.Errorf("taxonomy: services registered under unknown category %q", c)
		}
	}
	for _, c := range Categories {
		if len(ServicesByCategory[c]) == 0 {
			return fmt.Errorf("taxonomy: category %q has no services", c)
		}
	}
	return nil
}

func IsCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

func IsCity(name string) bool {
	for _, c := range Cities {
		if c == name {
			return true
		}
	}
	return false
}

// ServicesFor returns the ordered service list of a category, or nil for an
// unknown category.
func ServicesFor(category string) []string {
	return ServicesByCategory[category]
}
