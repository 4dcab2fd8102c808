package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

// Demo data for freshly registered accounts, anchored to the registration
// month so the dashboard opens with current numbers.

func defaultCategories() models.Categories {
	return models.Categories{
		Income:  []string{"Salario", "Ventas", "Freelance"},
		Expense: []string{"Alimentación", "Transporte", "Servicios", "Ocio", "Salud", "Educación", "Pago Tarjeta"},
	}
}

func seedCards() []models.Card {
	return []models.Card{
		{CardID: uuid.New().String(), Name: "Visa Principal", Limit: 1000000},
		{CardID: uuid.New().String(), Name: "Mastercard", Limit: 500000},
	}
}

func seedTransactions(now time.Time, cards []models.Card) []models.Transaction {
	// fmtDate builds YYYY-MM-DD relative to the current month; time.Date
	// normalizes negative month offsets across year boundaries.
	fmtDate := func(monthOffset, day int) string {
		return time.Date(now.Year(), now.Month()+time.Month(monthOffset), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}

	visa, mastercard := cards[0].CardID, cards[1].CardID

	txs := []models.Transaction{
		{Type: models.TypeIncome, Category: "Salario", Description: "Sueldo Mensual", Amount: 1500000, Date: fmtDate(0, 1)},
		{Type: models.TypeIncome, Category: "Freelance", Description: "Proyecto Web E-commerce", Amount: 450000, Date: fmtDate(-1, 15)},
		{Type: models.TypeIncome, Category: "Ventas", Description: "Venta Consola", Amount: 120000, Date: fmtDate(0, 10)},

		{Type: models.TypeExpense, Category: "Alimentación", Description: "Supermercado Lider", Amount: 85000, Date: fmtDate(0, 5)},
		{Type: models.TypeExpense, Category: "Alimentación", Description: "Feria Verduras Semanal", Amount: 25000, Date: fmtDate(0, 12)},
		{Type: models.TypeExpense, Category: "Servicios", Description: "Internet Fibra", Amount: 25990, Date: fmtDate(0, 10)},
		{Type: models.TypeExpense, Category: "Servicios", Description: "Cuenta de Luz", Amount: 35000, Date: fmtDate(0, 15)},
		{Type: models.TypeExpense, Category: "Transporte", Description: "Carga Bip!", Amount: 15000, Date: fmtDate(0, 3)},
		{Type: models.TypeExpense, Category: "Ocio", Description: "Entradas Cine IMAX", Amount: 18000, Date: fmtDate(0, 8)},
		{Type: models.TypeExpense, Category: "Salud", Description: "Farmacia Remedios", Amount: 12500, Date: fmtDate(0, 18)},
		{Type: models.TypeExpense, Category: "Educación", Description: "Curso Online Inglés", Amount: 75000, Date: fmtDate(-1, 10)},

		{Type: models.TypeExpense, Category: "Ocio", Description: "TV Smart 55\" Samsung", Amount: 329990, Date: fmtDate(-1, 10),
			CardID: visa, Installments: 3, FirstPaymentDate: fmtDate(0, 5)},
		{Type: models.TypeExpense, Category: "Transporte", Description: "Pasajes Vacaciones Sur", Amount: 450000, Date: fmtDate(-2, 15),
			CardID: visa, Installments: 6, FirstPaymentDate: fmtDate(-1, 5)},
		{Type: models.TypeExpense, Category: "Educación", Description: "Notebook Trabajo", Amount: 890000, Date: fmtDate(-3, 20),
			CardID: visa, Installments: 12, FirstPaymentDate: fmtDate(-2, 5)},

		{Type: models.TypeExpense, Category: "Ocio", Description: "Netflix Premium", Amount: 10790, Date: fmtDate(0, 15),
			CardID: mastercard, Installments: 1, FirstPaymentDate: fmtDate(0, 15)},
		{Type: models.TypeExpense, Category: "Ocio", Description: "Spotify Duo", Amount: 9500, Date: fmtDate(0, 20),
			CardID: mastercard, Installments: 1, FirstPaymentDate: fmtDate(0, 20)},
		{Type: models.TypeExpense, Category: "Salud", Description: "Suscripción Gym", Amount: 35000, Date: fmtDate(0, 1),
			CardID: mastercard, Installments: 1, FirstPaymentDate: fmtDate(0, 1)},

		{Type: models.TypeSaving, Category: "Ahorro General", Description: "Ahorro Mes Actual", Amount: 150000, Date: fmtDate(0, 28)},
		{Type: models.TypeSaving, Category: "Ahorro General", Description: "Ahorro Mes Pasado", Amount: 120000, Date: fmtDate(-1, 28)},
		{Type: models.TypeSaving, Category: "Ahorro General", Description: "Bono Navidad Ahorrado", Amount: 200000, Date: fmtDate(-4, 25)},
	}

	for i := range txs {
		txs[i].TransactionID = uuid.New().String()
	}
	return txs
}

func seedWishlist() []models.WishlistItem {
	items := []models.WishlistItem{
		{Name: "PlayStation 5", Price: 549990},
		{Name: "Viaje a Brasil", Price: 850000},
		{Name: "iPhone 15", Price: 949990},
		{Name: "Bicicleta Trek", Price: 380000},
	}
	for i := range items {
		items[i].ItemID = uuid.New().String()
	}
	return items
}
