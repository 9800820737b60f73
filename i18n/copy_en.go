package i18n

import "github.com/foomo/resinaro/vo"

func english() CopyBag {
	return CopyBag{
		Locale:   vo.LocaleEN,
		SiteName: "Resinaro",
		Directory: DirectoryCopy{
			Name:              "Directory",
			Heading:           "Italian places across the UK",
			Intro:             "Restaurants, delis and shops picked by Italians living in the UK.",
			CitiesHeading:     "Cities",
			CategoriesHeading: "Categories",
			CityHeading:       "Italian {city}",
			CityIntro:         "Where Italians in {city} eat, shop and stock up.",
			CategoryHeading:   "{category} in {city}",
			RankLabel:         "No.",
			AddressLabel:      "Address",
			PhoneLabel:        "Phone",
			PriceLabel:        "Price",
			WebsiteLabel:      "Website",
			MenuLabel:         "Menu",
			MapsLabel:         "Open in Maps",
			ReviewLabel:       "What people say",
			TagsLabel:         "Tags",
			FAQHeading:        "Frequently asked questions",
			BackToCity:        "All categories in {city}",
			OtherLanguage:     "Leggi in italiano",
		},
		Categories: CategoryLabels{
			Restaurants: CategoryCopy{
				Label:   "Italian restaurants",
				Heading: "Italian restaurants in {city}",
				Intro:   "Trattorie, pizzerie and osterie that get the basics right.",
			},
			Delis: CategoryCopy{
				Label:   "Italian delis",
				Heading: "Italian delis in {city}",
				Intro:   "Salumi, cheese and the pantry staples you miss from home.",
			},
			Shops: CategoryCopy{
				Label:   "Italian shops",
				Heading: "Italian shops in {city}",
				Intro:   "Books, coffee, homeware and everything else Italian.",
			},
		},
		Badges: BadgeLabels{
			EditorsPick: "Editor's pick",
			HandChecked: "Hand-checked",
			Community:   "Community favourite",
		},
		FAQs: []FAQ{
			{
				Question: "How are places chosen?",
				Answer:   "Every place is suggested by the community and visited or checked by our editors before it is listed.",
			},
			{
				Question: "Does the order mean anything?",
				Answer:   "Yes, places are ranked by our editors. Number one is where we would send a friend first.",
			},
			{
				Question: "Can businesses pay to be listed?",
				Answer:   "No. Listings are free and there are no sponsored positions.",
			},
		},
		HowTo: HowToCopy{
			Name:        "How to get your business listed",
			Description: "Three steps to add an Italian business to the Resinaro directory.",
			Steps: []Step{
				{Name: "Tell us about it", Text: "Send us the name, address and what makes the place Italian."},
				{Name: "We check it", Text: "An editor visits or calls to confirm the details."},
				{Name: "Go live", Text: "The listing appears in the directory of your city."},
			},
		},
		Newsletter: NewsletterCopy{
			Heading:     "Stay in the loop",
			Text:        "New places, guides and community events once a month.",
			EmailLabel:  "Email address",
			Placeholder: "you@example.com",
			Submit:      "Subscribe",
		},
		NotFound: NotFoundCopy{
			Title:   "Page not found",
			Heading: "We could not find that page",
			Text:    "There are no listings here yet.",
			Back:    "Back to the directory",
		},
		Meta: MetaCopy{
			DirectoryTitle:       "Italian directory UK | Resinaro",
			DirectoryDescription: "Italian restaurants, delis and shops in UK cities, picked by the Italian community.",
			CityTitle:            "Italian places in {city} | Resinaro",
			CityDescription:      "The best Italian restaurants, delis and shops in {city}, checked by Italians living there.",
			CategoryTitle:        "{category} in {city} | Resinaro",
			CategoryDescription:  "{category} in {city} ranked by the Resinaro community, with addresses, maps and reviews.",
		},
	}
}
