// Package fixtures holds the built-in demonstration dataset of the clinic.
package fixtures

import (
	"time"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DemoPassword is the password of every demo account.
const DemoPassword = "password"

var standardFrequencies = []int{250, 500, 1000, 2000, 4000, 8000}

func ear(air, bone []float64) entity.AudiometricData {
	return entity.AudiometricData{
		Frequencies:    append([]int(nil), standardFrequencies...),
		AirConduction:  air,
		BoneConduction: bone,
	}
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func item(description string, quantity int, unitPrice int64) entity.InvoiceItem {
	return entity.InvoiceItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   money(unitPrice),
		Total:       money(unitPrice * int64(quantity)),
	}
}

// Demo returns the demonstration dataset with dates relative to now.
func Demo(now time.Time) *dto.SeedRequest {
	days := func(n int) string { return entity.Timestamp(now.AddDate(0, 0, n)) }
	months := func(n int) string { return entity.Timestamp(now.AddDate(0, n, 0)) }
	fixed := func(date string) string {
		t, _ := time.Parse("2006-01-02", date)
		return entity.Timestamp(t)
	}
	amount := func(v int64) *decimal.Decimal {
		d := money(v)
		return &d
	}

	return &dto.SeedRequest{
		Users: []dto.CreateUserRequest{
			{
				ID:        "1",
				Name:      "Dr. Admin",
				Email:     "admin@audiocare.fr",
				Password:  DemoPassword,
				Role:      entity.RoleAdmin,
				Avatar:    "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?auto=format&fit=crop&q=80&w=200&h=200",
				CreatedAt: fixed("2023-01-01"),
				LastLogin: days(0),
			},
			{
				ID:        "2",
				Name:      "Dr. Martin",
				Email:     "prothesiste@audiocare.fr",
				Password:  DemoPassword,
				Role:      entity.RoleAudioprothesiste,
				Avatar:    "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?auto=format&fit=crop&q=80&w=200&h=200",
				CreatedAt: fixed("2023-02-15"),
				LastLogin: days(-1),
			},
			{
				ID:        "3",
				Name:      "Sophie Assistant",
				Email:     "assistant@audiocare.fr",
				Password:  DemoPassword,
				Role:      entity.RoleAssistant,
				Avatar:    "https://images.unsplash.com/photo-1594824476967-48c8b964273f?auto=format&fit=crop&q=80&w=200&h=200",
				CreatedAt: fixed("2023-03-20"),
				LastLogin: days(-2),
			},
		},
		Patients: []dto.CreatePatientRequest{
			{
				ID:                  "1",
				FirstName:           "Jean",
				LastName:            "Dupont",
				Age:                 72,
				DateOfBirth:         "1952-05-15",
				Gender:              "M",
				Phone:               "06 12 34 56 78",
				Email:               "jean.dupont@email.com",
				Address:             "12 Rue des Fleurs, 75001 Paris",
				MedicalHistory:      "Hypertension, Diabète type 2",
				AudiologicalHistory: "Presbyacousie bilatérale progressive depuis 5 ans",
				CreatedAt:           months(-6),
				LastVisit:           days(-14),
			},
			{
				ID:                  "2",
				FirstName:           "Marie",
				LastName:            "Martin",
				Age:                 68,
				DateOfBirth:         "1956-08-22",
				Gender:              "F",
				Phone:               "06 98 76 54 32",
				Email:               "marie.martin@email.com",
				Address:             "45 Avenue de la République, 69002 Lyon",
				MedicalHistory:      "Aucun antécédent notable",
				AudiologicalHistory: "Acouphènes oreille gauche",
				CreatedAt:           months(-3),
				LastVisit:           days(-2),
			},
			{
				ID:                  "3",
				FirstName:           "Robert",
				LastName:            "Dubois",
				Age:                 55,
				DateOfBirth:         "1969-11-30",
				Gender:              "M",
				Phone:               "06 11 22 33 44",
				Email:               "robert.dubois@email.com",
				Address:             "8 Boulevard Victor Hugo, 13008 Marseille",
				MedicalHistory:      "Traumatisme crânien en 1990",
				AudiologicalHistory: "Surdité brusque oreille droite",
				CreatedAt:           days(-10),
				LastVisit:           days(-10),
			},
			{
				ID:                  "4",
				FirstName:           "Sophie",
				LastName:            "Leroy",
				Age:                 80,
				DateOfBirth:         "1944-03-12",
				Gender:              "F",
				Phone:               "06 55 44 33 22",
				Email:               "sophie.leroy@email.com",
				Address:             "22 Rue de la Paix, 33000 Bordeaux",
				MedicalHistory:      "Arthrose cervicale",
				AudiologicalHistory: "Appareillée depuis 10 ans",
				CreatedAt:           months(-24),
				LastVisit:           days(-30),
			},
			{
				ID:                  "5",
				FirstName:           "Pierre",
				LastName:            "Moreau",
				Age:                 62,
				DateOfBirth:         "1962-07-08",
				Gender:              "M",
				Phone:               "06 77 88 99 00",
				Email:               "pierre.moreau@email.com",
				Address:             "5 Place du Commerce, 44000 Nantes",
				MedicalHistory:      "Exposition au bruit professionnel",
				AudiologicalHistory: "Encoche sur 4000Hz",
				CreatedAt:           months(-1),
				LastVisit:           days(-5),
			},
		},
		Audiograms: []dto.CreateAudiogramRequest{
			{
				ID:        "1",
				PatientID: "1",
				Date:      months(-6),
				Type:      entity.AudiogramInitial,
				RightEar:  ear([]float64{20, 25, 30, 45, 60, 70}, []float64{10, 15, 20, 35, 50, 60}),
				LeftEar:   ear([]float64{25, 30, 35, 50, 65, 75}, []float64{15, 20, 25, 40, 55, 65}),
				Notes:     "Presbyacousie classique, pente descendante.",
			},
			{
				ID:        "2",
				PatientID: "2",
				Date:      months(-3),
				Type:      entity.AudiogramInitial,
				RightEar:  ear([]float64{10, 10, 15, 20, 25, 30}, []float64{5, 5, 10, 15, 20, 25}),
				LeftEar:   ear([]float64{15, 20, 40, 50, 45, 35}, []float64{10, 15, 35, 45, 40, 30}),
				Notes:     "Acouphènes OG, légère perte sur les médiums.",
			},
		},
		HearingAids: []dto.CreateHearingAidRequest{
			{
				ID:         "1",
				Brand:      "Phonak",
				Model:      "Audéo Lumity",
				Technology: "premium",
				Type:       "RIC",
				Price:      money(380000),
				Features:   []string{"Bluetooth", "Rechargeable", "IA Vocal", "Étanche"},
				Image:      "https://www.phonak.com/content/dam/phonak/en/hearing-aids/audeo-lumity/phonak-audeo-lumity-L90-R-champagne-hero.png",
			},
			{
				ID:         "2",
				Brand:      "Oticon",
				Model:      "Real 1",
				Technology: "premium",
				Type:       "RIC",
				Price:      money(395000),
				Features:   []string{"Réseau neuronal profond", "Connectivité Smartphone", "Réduction bruit vent"},
				Image:      "https://wdh01.azureedge.net/-/media/oticon-us/main/products/real/oticon-real-minirite-r-olive-green.png",
			},
			{
				ID:         "3",
				Brand:      "Starkey",
				Model:      "Genesis AI",
				Technology: "ultra",
				Type:       "CIC",
				Price:      money(420000),
				Features:   []string{"Invisible", "Suivi santé", "Traduction instantanée", "Détection chute"},
				Image:      "https://www.starkey.com/-/media/starkey/product-images/genesis-ai/genesis-ai-cic-hero.png",
			},
			{
				ID:         "4",
				Brand:      "Signia",
				Model:      "Pure Charge&Go IX",
				Technology: "mid",
				Type:       "BTE",
				Price:      money(290000),
				Features:   []string{"Conversation en temps réel", "Batterie 24h", "Streaming direct"},
				Image:      "https://www.signia.net/-/media/signia/global/products/hearing-aids/integrated-xperience/pure-charge-go-ix/pure-charge-go-ix-beige.png",
			},
			{
				ID:         "5",
				Brand:      "Resound",
				Model:      "Omnia",
				Technology: "basic",
				Type:       "RIC",
				Price:      money(180000),
				Features:   []string{"Son naturel", "Application mobile", "Design discret"},
				Image:      "https://www.resound.com/-/media/resound/resound-products/omnia/resound-omnia-minirite-r-sparkling-silver.png",
			},
			{
				ID:         "6",
				Brand:      "Widex",
				Model:      "Moment Sheer",
				Technology: "premium",
				Type:       "RIC",
				Price:      money(365000),
				Features:   []string{"ZeroDelay", "PureSound", "Rechargeable"},
				Image:      "https://www.widex.com/-/media/widex/global/hearing-aids/moment/widex-moment-sheer-sRIC-R-tech-black.png",
			},
		},
		PatientDevices: []dto.CreatePatientDeviceRequest{
			{
				ID:            "1",
				PatientID:     "1",
				HearingAidID:  "1",
				Ear:           "both",
				DateInstalled: months(-5),
				Warranty:      entity.Timestamp(now.AddDate(0, -5, 365*4)),
				Status:        entity.DeviceActive,
				Adjustments: []entity.Adjustment{
					{
						ID:           "1",
						Date:         months(-5),
						Notes:        "Premier réglage. Cible NAL-NL2. Gain 80%.",
						Satisfaction: 4,
						Issues:       []string{"Son un peu métallique au début"},
					},
					{
						ID:           "2",
						Date:         months(-4),
						Notes:        "Ajustement des aigus. Activation réducteur de bruit.",
						Satisfaction: 5,
						Issues:       []string{},
					},
				},
			},
		},
		Appointments: []dto.CreateAppointmentRequest{
			{ID: "1", PatientID: "1", Date: days(2), Duration: 30, Type: "reglage", Status: entity.AppointmentPlanned, Notes: "Vérifier le confort dans le bruit"},
			{ID: "2", PatientID: "3", Date: days(0), Duration: 60, Type: "bilan", Status: entity.AppointmentConfirmed, Notes: "Nouveau patient, se plaint de l'oreille droite"},
			{ID: "3", PatientID: "2", Date: days(-1), Duration: 15, Type: "controle", Status: entity.AppointmentCompleted, Notes: "Tout va bien"},
			{ID: "4", PatientID: "4", Date: days(1), Duration: 45, Type: "essai", Status: entity.AppointmentPlanned, Notes: "Essai Oticon Real 1"},
		},
		Invoices: []dto.CreateInvoiceRequest{
			{
				ID:        "INV-2023-001",
				PatientID: "1",
				Date:      months(-5),
				Amount:    amount(760000),
				Status:    entity.InvoicePaid,
				Insurance: "MGEN",
				Items: []entity.InvoiceItem{
					item("Phonak Audéo Lumity (OD)", 1, 380000),
					item("Phonak Audéo Lumity (OG)", 1, 380000),
				},
			},
			{
				ID:        "INV-2023-002",
				PatientID: "1",
				Date:      months(-5),
				Amount:    amount(25000),
				Status:    entity.InvoicePaid,
				Items:     []entity.InvoiceItem{item("Chargeur Phonak", 1, 25000)},
			},
			{
				ID:        "INV-2023-003",
				PatientID: "5",
				Date:      days(-5),
				Amount:    amount(5000),
				Status:    entity.InvoicePending,
				Items:     []entity.InvoiceItem{item("Piles Rayovac 312 (Pack)", 5, 1000)},
			},
		},
		Expenses: []dto.CreateExpenseRequest{
			{ID: "EXP-2023-001", Date: days(0), Category: "loyer", Description: "Loyer local commercial - Janvier 2025", Amount: money(150000), Supplier: "Gérance Immobilière", Status: entity.ExpensePaid, PaymentMethod: "virement", Notes: "Loyer mensuel du local situé au 15 Rue du Commerce"},
			{ID: "EXP-2023-002", Date: days(-5), Category: "salaires", Description: "Salaires employés - Janvier 2025", Amount: money(450000), Status: entity.ExpensePaid, PaymentMethod: "virement", Notes: "Dr. Martin, Sophie Assistant"},
			{ID: "EXP-2023-003", Date: days(-7), Category: "fournitures", Description: "Commande fournitures médicales", Amount: money(45000), Supplier: "Medical Supply Algeria", Status: entity.ExpensePaid, PaymentMethod: "virement", Notes: "Gants, compresses, désinfectant"},
			{ID: "EXP-2023-004", Date: days(-10), Category: "equipement", Description: "Maintenance audiomètre", Amount: money(35000), Supplier: "AudioTech Service", Status: entity.ExpensePaid, PaymentMethod: "cheque", Notes: "Maintenance annuelle préventive"},
			{ID: "EXP-2023-005", Date: days(-12), Category: "services", Description: "Electricité et Internet", Amount: money(18000), Supplier: "Sonelgaz / Algérie Télécom", Status: entity.ExpensePaid, PaymentMethod: "virement", Notes: "Facture mensuelle"},
			{ID: "EXP-2023-006", Date: days(15), Category: "loyer", Description: "Loyer local commercial - Février 2025", Amount: money(150000), Supplier: "Gérance Immobilière", Status: entity.ExpensePending, PaymentMethod: "virement", Notes: "Loyer mensuel"},
			{ID: "EXP-2023-007", Date: days(20), Category: "salaires", Description: "Salaires employés - Février 2025", Amount: money(450000), Status: entity.ExpensePending, PaymentMethod: "virement", Notes: "Prévision salaires"},
			{ID: "EXP-2023-008", Date: days(-15), Category: "equipement", Description: "Achat nouvel audiomètre", Amount: money(850000), Supplier: "GN Otometrics", Status: entity.ExpenseCancelled, PaymentMethod: "virement", Notes: "Reporté au mois prochain"},
		},
		StockItems: []dto.CreateStockItemRequest{
			{ID: "STK-001", Name: "Pile zinc-air 312", Category: "consommable", SKU: "PZ312-100", Brand: "Rayovac", Unit: "pack", Quantity: 85, MinQuantity: 20, MaxQuantity: 100, PurchasePrice: money(800), SalePrice: money(1000), Location: "Étagère A1", Supplier: "Audio Supplies Algeria", LastRestock: days(-5), Notes: "Piles taille 312, très demandées"},
			{ID: "STK-002", Name: "Pile zinc-air 13", Category: "consommable", SKU: "PZ13-100", Brand: "Rayovac", Unit: "pack", Quantity: 120, MinQuantity: 25, MaxQuantity: 120, PurchasePrice: money(900), SalePrice: money(1200), Location: "Étagère A2", Supplier: "Audio Supplies Algeria", LastRestock: days(-2), Notes: "Piles taille 13"},
			{ID: "STK-003", Name: "Pile zinc-air 10", Category: "consommable", SKU: "PZ10-100", Brand: "Rayovac", Unit: "pack", Quantity: 15, MinQuantity: 20, MaxQuantity: 80, PurchasePrice: money(1000), SalePrice: money(1500), Location: "Étagère A3", Supplier: "Audio Supplies Algeria", LastRestock: months(-1), Notes: "Stock bas à commander"},
			{ID: "STK-004", Name: "Phonak Audéo Lumity", Category: "prothese", SKU: "PHN-LUM-RIC", Brand: "Phonak", Unit: "unite", Quantity: 4, MinQuantity: 2, MaxQuantity: 10, PurchasePrice: money(280000), SalePrice: money(380000), Location: "Vitrine V1", Supplier: "Phonak Algeria", LastRestock: days(-10), Image: "https://www.phonak.com/content/dam/phonak/en/hearing-aids/audeo-lumity/phonak-audeo-lumity-L90-R-champagne-hero.png", Notes: "Modèle premium, très populaire"},
			{ID: "STK-005", Name: "Oticon Real 1", Category: "prothese", SKU: "OTC-REAL-RIC", Brand: "Oticon", Unit: "unite", Quantity: 3, MinQuantity: 2, MaxQuantity: 8, PurchasePrice: money(290000), SalePrice: money(395000), Location: "Vitrine V2", Supplier: "Oticon Algeria", LastRestock: days(-15), Image: "https://wdh01.azureedge.net/-/media/oticon-us/main/products/real/oticon-real-minirite-r-olive-green.png", Notes: "Modèle premium"},
			{ID: "STK-006", Name: "Dôme ouvert (taille M)", Category: "accessoire", SKU: "DOM-M-50", Brand: "Universel", Unit: "pack", Quantity: 45, MinQuantity: 10, MaxQuantity: 60, PurchasePrice: money(1500), SalePrice: money(3000), Location: "Tiroir T1", Supplier: "Audio Supplies Algeria", LastRestock: days(-7), Notes: "Dômes RIC, taille moyenne"},
			{ID: "STK-007", Name: "Dôme fermé (taille S)", Category: "accessoire", SKU: "DOM-S-50", Brand: "Universel", Unit: "pack", Quantity: 8, MinQuantity: 15, MaxQuantity: 60, PurchasePrice: money(1500), SalePrice: money(3000), Location: "Tiroir T1", Supplier: "Audio Supplies Algeria", LastRestock: months(-2), Notes: "Stock critique"},
			{ID: "STK-008", Name: "Télécommande RC-DEX", Category: "accessoire", SKU: "TEL-RC-DEX", Brand: "Phonak", Unit: "unite", Quantity: 2, MinQuantity: 1, MaxQuantity: 5, PurchasePrice: money(35000), SalePrice: money(50000), Location: "Tiroir T2", Supplier: "Phonak Algeria", LastRestock: months(-3), Notes: "Télécommande Phonak"},
			{ID: "STK-009", Name: "Chargeur Com-Dry", Category: "equipement", SKU: "CHG-COM-DRY", Brand: "Phonak", Unit: "unite", Quantity: 1, MinQuantity: 1, MaxQuantity: 3, PurchasePrice: money(80000), SalePrice: money(120000), Location: "Armoire AR1", Supplier: "Phonak Algeria", LastRestock: months(-6), Notes: "Chargeur et séchoir"},
			{ID: "STK-010", Name: "Kit de nettoyage", Category: "consommable", SKU: "NET-KIT", Brand: "Universel", Unit: "pack", Quantity: 25, MinQuantity: 10, MaxQuantity: 40, PurchasePrice: money(2000), SalePrice: money(4000), Location: "Étagère B1", Supplier: "Audio Supplies Algeria", LastRestock: days(-12), Notes: "Spray, chiffon, outil"},
		},
	}
}
