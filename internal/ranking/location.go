package ranking

import (
	"strings"

	"github.com/careza/matchengine/internal/types"
)

// Location tier scores, checked in order: same city, same province, remote
// role, no overlap.
const (
	locationCityScore     = 100
	locationRemoteScore   = 90
	locationProvinceScore = 70
	locationOtherScore    = 30
)

// cityProvinces maps major South African cities and towns to their province.
// Lookup keys are lowercase substrings matched against free-text locations.
var cityProvinces = map[string]string{
	"johannesburg":     "gauteng",
	"sandton":          "gauteng",
	"randburg":         "gauteng",
	"midrand":          "gauteng",
	"centurion":        "gauteng",
	"pretoria":         "gauteng",
	"soweto":           "gauteng",
	"benoni":           "gauteng",
	"cape town":        "western cape",
	"stellenbosch":     "western cape",
	"bellville":        "western cape",
	"paarl":            "western cape",
	"george":           "western cape",
	"durban":           "kwazulu-natal",
	"umhlanga":         "kwazulu-natal",
	"pietermaritzburg": "kwazulu-natal",
	"richards bay":     "kwazulu-natal",
	"gqeberha":         "eastern cape",
	"port elizabeth":   "eastern cape",
	"east london":      "eastern cape",
	"bloemfontein":     "free state",
	"welkom":           "free state",
	"polokwane":        "limpopo",
	"nelspruit":        "mpumalanga",
	"mbombela":         "mpumalanga",
	"witbank":          "mpumalanga",
	"kimberley":        "northern cape",
	"upington":         "northern cape",
	"rustenburg":       "north west",
	"potchefstroom":    "north west",
	"mahikeng":         "north west",
}

// ScoreLocation scores geographic fit between the candidate's stated location
// and the posting. Tiers are checked in order: exact city overlap, same
// province, remote posting, then a low non-zero baseline since relocation is
// always possible.
func ScoreLocation(cv *types.CVProfile, job *types.JobPosting) int {
	cvLoc := ""
	if cv.Personal.Location != nil {
		cvLoc = strings.ToLower(strings.TrimSpace(*cv.Personal.Location))
	}
	jobLoc := strings.ToLower(strings.TrimSpace(job.Location))

	if cvLoc != "" && jobLoc != "" &&
		(strings.Contains(jobLoc, cvLoc) || strings.Contains(cvLoc, jobLoc)) {
		return locationCityScore
	}

	cvProvince := provinceOf(cvLoc)
	jobProvince := strings.ToLower(strings.TrimSpace(job.Province))
	if jobProvince == "" {
		jobProvince = provinceOf(jobLoc)
	}
	if cvProvince != "" && cvProvince == jobProvince {
		return locationProvinceScore
	}

	jobText := strings.ToLower(job.FullText() + " " + job.Location)
	if strings.Contains(jobText, "remote") {
		return locationRemoteScore
	}

	return locationOtherScore
}

// provinceOf resolves a free-text location to a province, first by direct
// province name, then by known city lookup.
func provinceOf(location string) string {
	if location == "" {
		return ""
	}
	for _, province := range []string{
		"gauteng", "western cape", "kwazulu-natal", "eastern cape",
		"free state", "limpopo", "mpumalanga", "northern cape", "north west",
	} {
		if strings.Contains(location, province) {
			return province
		}
	}
	for city, province := range cityProvinces {
		if strings.Contains(location, city) {
			return province
		}
	}
	return ""
}
