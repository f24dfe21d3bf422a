package catalog

import "medrental/internal/domain"

// seedProducts is the rental line-up. Prices are monthly, in cents.
var seedProducts = []domain.Product{
	{
		ID:          "1",
		SKU:         "CEN-CR-001",
		Name:        "Cadeira de Rodas Comfort Plus",
		Description: "Cadeira de rodas dobrável com estrutura em aço carbono, assento e encosto em nylon acolchoado. Ideal para uso diário.",
		PriceCents:  18990,
		ImageURL:    "https://images.unsplash.com/photo-1576091160550-2173dba999ef?w=400&h=400&fit=crop",
		Category:    "Mobilidade",
	},
	{
		ID:          "2",
		SKU:         "CEN-CR-002",
		Name:        "Cadeira de Rodas Alumínio Light",
		Description: "Cadeira de rodas ultraleve em alumínio, fácil transporte e manuseio. Pneus maciços anti-furo.",
		PriceCents:  24990,
		ImageURL:    "https://images.unsplash.com/photo-1631815589968-fdb09a223b1e?w=400&h=400&fit=crop",
		Category:    "Mobilidade",
	},
	{
		ID:          "3",
		SKU:         "CEN-CB-001",
		Name:        "Cadeira de Banho Higiênica",
		Description: "Cadeira de banho com assento sanitário removível, estrutura em alumínio resistente à corrosão.",
		PriceCents:  12990,
		ImageURL:    "https://images.unsplash.com/photo-1584820927498-cfe5211fd8bf?w=400&h=400&fit=crop",
		Category:    "Higiene",
	},
	{
		ID:          "4",
		SKU:         "CEN-CB-002",
		Name:        "Cadeira de Banho Premium",
		Description: "Cadeira de banho com encosto reclinável e apoio para pés. Ideal para pacientes com mobilidade reduzida.",
		PriceCents:  15990,
		ImageURL:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=400&fit=crop",
		Category:    "Higiene",
	},
	{
		ID:          "5",
		SKU:         "CEN-AN-001",
		Name:        "Andador Articulado Dobrável",
		Description: "Andador com rodas fronteiras e ponteiras traseiras, altura regulável e dobrável para fácil transporte.",
		PriceCents:  9990,
		ImageURL:    "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?w=400&h=400&fit=crop",
		Category:    "Mobilidade",
	},
	{
		ID:          "6",
		SKU:         "CEN-AN-002",
		Name:        "Andador com Assento",
		Description: "Andador com 4 rodas, freios manuais e assento dobrável para descanso. Estrutura em alumínio.",
		PriceCents:  14990,
		ImageURL:    "https://images.unsplash.com/photo-1586105251261-72a756497a11?w=400&h=400&fit=crop",
		Category:    "Mobilidade",
	},
	{
		ID:          "7",
		SKU:         "CEN-MU-001",
		Name:        "Muleta Axilar Regulável",
		Description: "Par de muletas axilares em alumínio com altura regulável e ponteiras antiderrapantes.",
		PriceCents:  5990,
		ImageURL:    "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop",
		Category:    "Mobilidade",
	},
	{
		ID:          "8",
		SKU:         "CEN-MU-002",
		Name:        "Muleta Canadense Par",
		Description: "Par de muletas canadenses ergonômicas com apoio de antebraço acolchoado.",
		PriceCents:  7990,
		ImageURL:    "https://images.unsplash.com/photo-1579684385127-1ef15d508118?w=400&h=400&fit=crop",
		Category:    "Mobilidade",
	},
	{
		ID:          "9",
		SKU:         "CEN-CP-001",
		Name:        "CPAP Automático",
		Description: "Aparelho CPAP automático para tratamento de apneia do sono, com umidificador integrado.",
		PriceCents:  29990,
		ImageURL:    "https://images.unsplash.com/photo-1516549655169-df83a0774514?w=400&h=400&fit=crop",
		Category:    "Respiratório",
	},
	{
		ID:          "10",
		SKU:         "CEN-CP-002",
		Name:        "BiPAP Hospitalar",
		Description: "Ventilador BiPAP com dois níveis de pressão, ideal para uso hospitalar e domiciliar.",
		PriceCents:  44990,
		ImageURL:    "https://images.unsplash.com/photo-1530026405186-ed1f139313f8?w=400&h=400&fit=crop",
		Category:    "Respiratório",
	},
	{
		ID:          "11",
		SKU:         "CEN-CH-001",
		Name:        "Cama Hospitalar Manual",
		Description: "Cama hospitalar com cabeceira e pés eleváveis manualmente, grades laterais e colchão.",
		PriceCents:  38990,
		ImageURL:    "https://images.unsplash.com/photo-1538108149393-fbbd81895907?w=400&h=400&fit=crop",
		Category:    "Hospitalar",
	},
	{
		ID:          "12",
		SKU:         "CEN-CH-002",
		Name:        "Cama Hospitalar Elétrica",
		Description: "Cama hospitalar com controle elétrico, 3 movimentos, grades retráteis e rodízios com freio.",
		PriceCents:  54990,
		ImageURL:    "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=400&h=400&fit=crop",
		Category:    "Hospitalar",
	},
	{
		ID:          "13",
		SKU:         "CEN-BG-001",
		Name:        "Bengala Alumínio Dobrável",
		Description: "Bengala em alumínio dobrável com altura regulável e ponteira de borracha antiderrapante.",
		PriceCents:  3990,
		ImageURL:    "https://images.unsplash.com/photo-1559757175-5700dde675bc?w=400&h=400&fit=crop",
		Category:    "Mobilidade",
	},
	{
		ID:          "14",
		SKU:         "CEN-BG-002",
		Name:        "Bengala 4 Pontas",
		Description: "Bengala com base em 4 pontas para maior estabilidade, altura regulável e empunhadura ergonômica.",
		PriceCents:  6990,
		ImageURL:    "https://images.unsplash.com/photo-1576765608535-5f04d1e3f289?w=400&h=400&fit=crop",
		Category:    "Mobilidade",
	},
	{
		ID:          "15",
		SKU:         "CEN-BO-001",
		Name:        "Bota Ortopédica Curta",
		Description: "Bota imobilizadora curta (robofoot) para tratamento de lesões no pé e tornozelo.",
		PriceCents:  8990,
		ImageURL:    "https://images.unsplash.com/photo-1551884170-09fb70a3a2ed?w=400&h=400&fit=crop",
		Category:    "Ortopedia",
	},
	{
		ID:          "16",
		SKU:         "CEN-BO-002",
		Name:        "Bota Ortopédica Longa",
		Description: "Bota imobilizadora longa para fraturas e pós-operatório, com regulagem de ângulo.",
		PriceCents:  11990,
		ImageURL:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=400&fit=crop",
		Category:    "Ortopedia",
	},
}
