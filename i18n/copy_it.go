package i18n

import "github.com/foomo/resinaro/vo"

func italian() CopyBag {
	return CopyBag{
		Locale:   vo.LocaleIT,
		SiteName: "Resinaro",
		Directory: DirectoryCopy{
			Name:              "Elenco",
			Heading:           "Posti italiani nel Regno Unito",
			Intro:             "Ristoranti, gastronomie e negozi scelti da italiani che vivono nel Regno Unito.",
			CitiesHeading:     "Città",
			CategoriesHeading: "Categorie",
			CityHeading:       "{city} italiana",
			CityIntro:         "Dove gli italiani di {city} mangiano, fanno la spesa e trovano i prodotti di casa.",
			CategoryHeading:   "{category} a {city}",
			RankLabel:         "N.",
			AddressLabel:      "Indirizzo",
			PhoneLabel:        "Telefono",
			PriceLabel:        "Prezzo",
			WebsiteLabel:      "Sito web",
			MenuLabel:         "Menù",
			MapsLabel:         "Apri in Maps",
			ReviewLabel:       "Cosa dicono",
			TagsLabel:         "Etichette",
			FAQHeading:        "Domande frequenti",
			BackToCity:        "Tutte le categorie a {city}",
			OtherLanguage:     "Read in English",
		},
		Categories: CategoryLabels{
			Restaurants: CategoryCopy{
				Label:   "Ristoranti italiani",
				Heading: "Ristoranti italiani a {city}",
				Intro:   "Trattorie, pizzerie e osterie che fanno bene le cose semplici.",
			},
			Delis: CategoryCopy{
				Label:   "Gastronomie italiane",
				Heading: "Gastronomie italiane a {city}",
				Intro:   "Salumi, formaggi e i prodotti di dispensa che ti mancano da casa.",
			},
			Shops: CategoryCopy{
				Label:   "Negozi italiani",
				Heading: "Negozi italiani a {city}",
				Intro:   "Libri, caffè, casalinghi e tutto il resto, all'italiana.",
			},
		},
		Badges: BadgeLabels{
			EditorsPick: "Scelto dalla redazione",
			HandChecked: "Verificato",
			Community:   "Preferito dalla community",
		},
		FAQs: []FAQ{
			{
				Question: "Come vengono scelti i posti?",
				Answer:   "Ogni posto è segnalato dalla community e visitato o verificato dalla redazione prima di essere pubblicato.",
			},
			{
				Question: "L'ordine ha un significato?",
				Answer:   "Sì, la classifica è della redazione. Il numero uno è dove manderemmo per primo un amico.",
			},
			{
				Question: "Le attività possono pagare per comparire?",
				Answer:   "No. Le schede sono gratuite e non ci sono posizioni sponsorizzate.",
			},
		},
		HowTo: HowToCopy{
			Name:        "Come inserire la tua attività",
			Description: "Tre passi per aggiungere un'attività italiana all'elenco di Resinaro.",
			Steps: []Step{
				{Name: "Raccontacela", Text: "Mandaci nome, indirizzo e cosa rende il posto italiano."},
				{Name: "La verifichiamo", Text: "Un redattore passa o telefona per confermare i dettagli."},
				{Name: "Online", Text: "La scheda compare nell'elenco della tua città."},
			},
		},
		Newsletter: NewsletterCopy{
			Heading:     "Resta aggiornato",
			Text:        "Nuovi posti, guide ed eventi della community una volta al mese.",
			EmailLabel:  "Indirizzo email",
			Placeholder: "tu@esempio.it",
			Submit:      "Iscriviti",
		},
		NotFound: NotFoundCopy{
			Title:   "Pagina non trovata",
			Heading: "Non abbiamo trovato questa pagina",
			Text:    "Qui non ci sono ancora schede.",
			Back:    "Torna all'elenco",
		},
		Meta: MetaCopy{
			DirectoryTitle:       "Elenco italiano UK | Resinaro",
			DirectoryDescription: "Ristoranti, gastronomie e negozi italiani nelle città del Regno Unito, scelti dalla comunità italiana.",
			CityTitle:            "Posti italiani a {city} | Resinaro",
			CityDescription:      "I migliori ristoranti, gastronomie e negozi italiani a {city}, verificati da chi ci vive.",
			CategoryTitle:        "{category} a {city} | Resinaro",
			CategoryDescription:  "{category} a {city} in classifica secondo la community di Resinaro, con indirizzi, mappe e recensioni.",
		},
	}
}
