// Package seed embeds the initial Endecja (Narodowa Demokracja)
// knowledge graph. The bundle is loaded at startup when no persisted
// snapshot exists, or when the persisted snapshot carries a different
// Version tag than the bundle.
package seed

import (
	"fmt"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

// Version tags the bundled data. Bumping it forces a one-time
// re-hydration of persisted snapshots.
const Version = "1.3"

type rawNode struct {
	id, label   string
	typ         common.NodeType
	dates       string
	description string
	region      string
	importance  float64
	sources     []string
}

type rawEdge struct {
	source, target, label, dates string
	sign                         common.EdgeSign
}

var seedNodes = []rawNode{
	{id: "dmowski_roman", label: "Roman Dmowski", typ: common.NodeTypePerson, dates: "1864-1939",
		description: "Założyciel i główny ideolog Endecji. Twórca Ligi Narodowej (1893), przywódca Komitetu Narodowego Polskiego na konferencji pokojowej w Paryżu (1919). Sygnatariusz Traktatu Wersalskiego. Autor 'Myśli nowoczesnego Polaka' (1903).",
		region:      "Warszawa", importance: 1.0,
		sources: []string{"Myśli nowoczesnego Polaka", "Polityka polska i odbudowanie państwa"}},
	{id: "poplawski_jan", label: "Jan Ludwik Popławski", typ: common.NodeTypePerson, dates: "1854-1908",
		description: "Współzałożyciel Ligi Narodowej i główny teoretyk polskiego nacjonalizmu. Redaktor 'Przeglądu Wszechpolskiego' i 'Polaka'.",
		region:      "Warszawa", importance: 0.9,
		sources: []string{"Pisma polityczne", "Co to jest naród?"}},
	{id: "balicki_zygmunt", label: "Zygmunt Balicki", typ: common.NodeTypePerson, dates: "1858-1916",
		description: "Ideolog egoizmu narodowego i współzałożyciel Ligi Narodowej. Autor 'Egoizmu narodowego wobec etyki'.",
		region:      "Global", importance: 0.85,
		sources: []string{"Egoizm narodowy wobec etyki"}},
	{id: "grabski_wladyslaw", label: "Władysław Grabski", typ: common.NodeTypePerson, dates: "1874-1938",
		description: "Ekonomista i polityk narodowo-demokratyczny. Premier RP (1923-1925). Twórca reformy walutowej.",
		region:      "Warszawa", importance: 0.75},
	{id: "grabski_stanislaw", label: "Stanisław Grabski", typ: common.NodeTypePerson, dates: "1871-1949",
		description: "Ekonomista, polityk narodowy, brat Władysława Grabskiego. Działacz Stronnictwa Narodowego, profesor ekonomii.",
		region:      "Lwów", importance: 0.7},
	{id: "mosdorf_jan", label: "Jan Mosdorf", typ: common.NodeTypePerson, dates: "1904-1943",
		description: "Doktor filozofii i działacz narodowy młodego pokolenia. Przywódca Młodzieży Wszechpolskiej. Zginął w Auschwitz.",
		region:      "Warszawa", importance: 0.65,
		sources: []string{"Akademik i polityka"}},
	{id: "rybarski_roman", label: "Roman Rybarski", typ: common.NodeTypePerson, dates: "1887-1942",
		description: "Ekonomista, prawnik i działacz narodowy. Profesor Uniwersytetu Warszawskiego. Zginął w Auschwitz.",
		region:      "Warszawa", importance: 0.7,
		sources: []string{"Siła i prawo"}},
	{id: "pilsudski_jozef", label: "Józef Piłsudski", typ: common.NodeTypePerson, dates: "1867-1935",
		description: "RYWAL Dmowskiego. Przywódca obozu sanacyjnego po zamachu majowym 1926. Propagował federalizm.",
		region:      "Wilno", importance: 0.95},
	{id: "seyda_mariano", label: "Marian Seyda", typ: common.NodeTypePerson, dates: "1879-1967",
		description: "Polityk narodowy z Wielkopolski, minister spraw zagranicznych RP (1923).",
		region:      "Wielkopolska", importance: 0.65},

	{id: "liga_polska", label: "Liga Polska", typ: common.NodeTypeOrganization, dates: "1887-1893",
		description: "Poprzedniczka Ligi Narodowej.", importance: 0.65},
	{id: "liga_narodowa", label: "Liga Narodowa", typ: common.NodeTypeOrganization, dates: "1893-1928",
		description: "Tajna organizacja założona przez Dmowskiego, Popławskiego i Balickiego.", importance: 1.0},
	{id: "snd", label: "Stronnictwo Narodowo-Demokratyczne", typ: common.NodeTypeOrganization, dates: "1897-1919",
		description: "Partia Narodowo-Demokratyczna. Jawne skrzydło polityczne Ligi Narodowej.", importance: 0.9},
	{id: "komitet_narodowy", label: "Komitet Narodowy Polski", typ: common.NodeTypeOrganization, dates: "1917-1919",
		description: "Prowadzony przez Dmowskiego. Uznany przez aliantów rząd polski.", importance: 0.95},
	{id: "stronnictwo_narodowe", label: "Stronnictwo Narodowe", typ: common.NodeTypeOrganization, dates: "1928-1939",
		description: "Partia Narodowa. Zreformowana po zamachu majowym Piłsudskiego.", importance: 0.85},
	{id: "owp", label: "Obóz Wielkiej Polski", typ: common.NodeTypeOrganization, dates: "1926-1933",
		description: "Organizacja założona przez Romana Dmowskiego w grudniu 1926 roku. Masowy ruch narodowy.", importance: 0.8},
	{id: "mlodziez_wszechpolska", label: "Młodzież Wszechpolska", typ: common.NodeTypeOrganization, dates: "1922-1939",
		description: "Organizacja młodzieżowa ruchu narodowego na uniwersytetach.", importance: 0.75},

	{id: "zalozenie_ligi", label: "Założenie Ligi Narodowej", typ: common.NodeTypeEvent, dates: "1893",
		description: "Tajne spotkanie w Warszawie. Dmowski, Popławski i Balicki założyli Ligę.", importance: 1.0},
	{id: "udzial_w_dumie", label: "Udział w Dumie Rosyjskiej", typ: common.NodeTypeEvent, dates: "1906-1917",
		description: "Członkowie ND wybrani do Dumy Rosyjskiej.", importance: 0.8},
	{id: "konferencja_paryska", label: "Konferencja Pokojowa w Paryżu", typ: common.NodeTypeEvent, dates: "1919",
		description: "Dmowski reprezentował Polskę. Zabezpieczył zachodnie granice.", importance: 1.0},
	{id: "zamach_majowy", label: "Zamach Majowy", typ: common.NodeTypeEvent, dates: "1926-05",
		description: "Piłsudski przejął władzę. ND sprzeciwiło się zamachowi.", importance: 0.9},

	{id: "przeglad_wszechpolski", label: "Przegląd Wszechpolski", typ: common.NodeTypePublication, dates: "1895-1905",
		description: "Główna gazeta ND redagowana przez Popławskiego.", importance: 0.8},
	{id: "mysli_polaka", label: "Myśli nowoczesnego Polaka", typ: common.NodeTypePublication, dates: "1903",
		description: "Dzieło fundamentalne Dmowskiego.", importance: 1.0},
	{id: "egoizm_narodowy", label: "Egoizm narodowy wobec etyki", typ: common.NodeTypePublication, dates: "1902",
		description: "Kluczowa broszura Balickiego.", importance: 0.9},

	{id: "egoizm_narodowy_concept", label: "Egoizm Narodowy", typ: common.NodeTypeConcept,
		description: "Podstawowa filozofia ND autorstwa Balickiego. Narody powinny dążyć do racjonalnego interesu własnego.", importance: 0.9},
	{id: "koncepcja_piastowska", label: "Koncepcja Piastowska", typ: common.NodeTypeConcept,
		description: "Wizja Dmowskiego: Polska powinna być budowana na historycznie polskich ziemiach.", importance: 0.85},
	{id: "demokracja_narodowa", label: "Demokracja Narodowa", typ: common.NodeTypeConcept,
		description: "Idea szerokiego ruchu narodowego obejmującego wszystkie warstwy społeczne.", importance: 0.8},
}

var seedEdges = []rawEdge{
	{source: "dmowski_roman", target: "liga_narodowa", label: "założył", dates: "1893"},
	{source: "poplawski_jan", target: "liga_narodowa", label: "współzałożył", dates: "1893"},
	{source: "balicki_zygmunt", target: "liga_narodowa", label: "współzałożył", dates: "1893"},
	{source: "dmowski_roman", target: "egoizm_narodowy_concept", label: "propagował"},
	{source: "balicki_zygmunt", target: "egoizm_narodowy_concept", label: "sformułował teorię", dates: "1902"},
	{source: "dmowski_roman", target: "koncepcja_piastowska", label: "opracował", dates: "1903"},
	{source: "liga_narodowa", target: "snd", label: "przekształciła się", dates: "1897"},
	{source: "snd", target: "stronnictwo_narodowe", label: "zreformowała się", dates: "1928"},
	{source: "dmowski_roman", target: "snd", label: "kierował", dates: "1897-1919"},
	{source: "dmowski_roman", target: "komitet_narodowy", label: "kierował", dates: "1917-1919"},
	{source: "dmowski_roman", target: "owp", label: "założył", dates: "1926"},
	{source: "dmowski_roman", target: "stronnictwo_narodowe", label: "wpływał", dates: "1928-1939"},
	{source: "poplawski_jan", target: "przeglad_wszechpolski", label: "redagował", dates: "1895-1905"},
	{source: "dmowski_roman", target: "przeglad_wszechpolski", label: "współpracował", dates: "1895-1905"},
	{source: "dmowski_roman", target: "mysli_polaka", label: "napisał", dates: "1903"},
	{source: "balicki_zygmunt", target: "egoizm_narodowy", label: "napisał", dates: "1902"},
	{source: "dmowski_roman", target: "zalozenie_ligi", label: "uczestniczył", dates: "1893"},
	{source: "dmowski_roman", target: "udzial_w_dumie", label: "reprezentował Polskę", dates: "1906-1917"},
	{source: "dmowski_roman", target: "konferencja_paryska", label: "reprezentował Polskę", dates: "1919"},
	{source: "dmowski_roman", target: "pilsudski_jozef", label: "rywalizował", dates: "1900-1935", sign: common.SignNegative},
	{source: "pilsudski_jozef", target: "zamach_majowy", label: "przeprowadził", dates: "1926"},
	{source: "stronnictwo_narodowe", target: "zamach_majowy", label: "sprzeciwiło się", dates: "1926", sign: common.SignNegative},
	{source: "mosdorf_jan", target: "mlodziez_wszechpolska", label: "kierował", dates: "1920s"},
	{source: "mlodziez_wszechpolska", target: "owp", label: "organ na uczelniach", dates: "1926-1933"},
	{source: "grabski_wladyslaw", target: "stronnictwo_narodowe", label: "członek", dates: "1920s"},
	{source: "rybarski_roman", target: "stronnictwo_narodowe", label: "poseł i przewodniczący klubu", dates: "1928-1935"},
	{source: "dmowski_roman", target: "poplawski_jan", label: "współpracował", dates: "1893-1908"},
	{source: "dmowski_roman", target: "balicki_zygmunt", label: "współpracował", dates: "1893-1916"},
	{source: "poplawski_jan", target: "balicki_zygmunt", label: "współpracował", dates: "1893-1908"},
	{source: "grabski_wladyslaw", target: "grabski_stanislaw", label: "bracia", dates: "1874-1938"},
	{source: "seyda_mariano", target: "stronnictwo_narodowe", label: "członek", dates: "1920s"},
	{source: "seyda_mariano", target: "dmowski_roman", label: "współpracował", dates: "1920s"},
	{source: "liga_polska", target: "liga_narodowa", label: "przekształciła się", dates: "1893"},
	{source: "dmowski_roman", target: "liga_polska", label: "członek", dates: "1887"},
	{source: "grabski_stanislaw", target: "stronnictwo_narodowe", label: "członek", dates: "1920s-1930s"},
	{source: "mosdorf_jan", target: "owp", label: "działacz", dates: "1926-1933"},
	{source: "rybarski_roman", target: "owp", label: "członek", dates: "1926-1933"},
	{source: "mysli_polaka", target: "egoizm_narodowy_concept", label: "propaguje", dates: "1903"},
	{source: "mysli_polaka", target: "koncepcja_piastowska", label: "przedstawia", dates: "1903"},
	{source: "egoizm_narodowy", target: "egoizm_narodowy_concept", label: "definiuje", dates: "1902"},
	{source: "snd", target: "komitet_narodowy", label: "delegowała do", dates: "1917"},
	{source: "owp", target: "stronnictwo_narodowe", label: "współpracował", dates: "1928-1933"},
	{source: "komitet_narodowy", target: "konferencja_paryska", label: "uczestniczył", dates: "1919"},
	{source: "dmowski_roman", target: "mosdorf_jan", label: "wpływał", dates: "1920s"},
	{source: "mysli_polaka", target: "demokracja_narodowa", label: "propaguje", dates: "1903"},
	{source: "liga_narodowa", target: "demokracja_narodowa", label: "propagowała", dates: "1893-1928"},
	{source: "poplawski_jan", target: "zalozenie_ligi", label: "uczestniczył", dates: "1893"},
	{source: "balicki_zygmunt", target: "zalozenie_ligi", label: "uczestniczył", dates: "1893"},
	{source: "koncepcja_piastowska", target: "konferencja_paryska", label: "realizowana", dates: "1919"},
}

// Graph builds a fresh copy of the seed graph. Nodes get the standard
// defaults (year derived from dates, region Unknown, certainty
// confirmed); edges referencing unknown ids are dropped.
func Graph() common.Graph {
	g := common.Graph{
		Nodes: make([]common.Node, 0, len(seedNodes)),
		Edges: make([]common.Edge, 0, len(seedEdges)),
		Meta:  common.Meta{Version: Version},
	}

	ids := make(map[string]bool, len(seedNodes))
	for _, rn := range seedNodes {
		region := rn.region
		if region == "" {
			region = common.RegionUnknown
		}
		g.Nodes = append(g.Nodes, common.Node{
			ID:          rn.id,
			Label:       rn.label,
			Type:        rn.typ,
			Year:        common.YearFromDates(rn.dates),
			Dates:       rn.dates,
			Description: rn.description,
			Importance:  rn.importance,
			Region:      region,
			Certainty:   common.CertaintyConfirmed,
			Sources:     append([]string(nil), rn.sources...),
		})
		ids[rn.id] = true
	}

	for i, re := range seedEdges {
		if !ids[re.source] || !ids[re.target] {
			continue
		}
		sign := re.sign
		if sign == "" {
			sign = common.SignPositive
		}
		g.Edges = append(g.Edges, common.Edge{
			ID:        fmt.Sprintf("edge_%d_%s_%s", i, re.source, re.target),
			Source:    re.source,
			Target:    re.target,
			Label:     re.label,
			Dates:     re.dates,
			Sign:      sign,
			Certainty: common.CertaintyConfirmed,
		})
	}

	return g
}
