package catalog

import "floripa_guide/internal/domain"

var spotLabels = map[domain.SpotKey]string{
	domain.SpotJoaquina:      "Praia da Joaquina",
	domain.SpotPraiaMole:     "Praia Mole",
	domain.SpotLagoinhaLeste: "Lagoinha do Leste",
	domain.SpotMorroCruz:     "Morro da Cruz",
	domain.SpotCampeche:      "Praia do Campeche",
	domain.SpotCostaLagoa:    "Costa da Lagoa",
}

// SpotLabel is the display name of a spot; unknown keys are shown as-is.
func SpotLabel(k domain.SpotKey) string {
	if l, ok := spotLabels[k]; ok {
		return l
	}
	return string(k)
}

// TrailLabel names a spot when it is visited as a hike.
func TrailLabel(k domain.SpotKey) string {
	switch k {
	case domain.SpotLagoinhaLeste:
		return "Trilha da Lagoinha do Leste"
	case domain.SpotCostaLagoa:
		return "Trilha Costa da Lagoa"
	}
	return SpotLabel(k)
}

// AfternoonLabel names a spot in the mid-afternoon slot.
func AfternoonLabel(k domain.SpotKey) string {
	if k == domain.SpotMorroCruz {
		return "Mirante Morro da Cruz"
	}
	return SpotLabel(k)
}

func EventLabel(nameKey string) string {
	if nameKey == "festaLagoa" {
		return "Festa na Lagoa"
	}
	return nameKey
}
