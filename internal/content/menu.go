package content

import "arame_concierge/internal/domain"

var menuItems = []domain.MenuItem{
	{Name: "Desayuno Americano", Price: 25000, Category: "Desayunos", Description: "Huevos, bacon, tostadas, jugo y café"},
	{Name: "Desayuno Continental", Price: 20000, Category: "Desayunos", Description: "Croissant, frutas, yogurt y café"},
	{Name: "Huevos Benedictinos", Price: 28000, Category: "Desayunos", Description: "Huevos pochados sobre muffin inglés con salsa holandesa"},

	{Name: "Risotto de Champiñones", Price: 35000, Category: "Platos Principales", Description: "Risotto cremoso con hongos y parmesano"},
	{Name: "Salmón a la Parrilla", Price: 48000, Category: "Platos Principales", Description: "Filete de salmón con vegetales salteados"},
	{Name: "Filete Mignon", Price: 55000, Category: "Platos Principales", Description: "Corte de res premium con puré de papas"},

	{Name: "Club Sándwich", Price: 32000, Category: "Sándwiches", Description: "Pollo, bacon, lechuga, tomate y mayonesa"},
	{Name: "Hamburguesa Aramé", Price: 38000, Category: "Sándwiches", Description: "Carne Angus, queso, bacon y papas"},
	{Name: "Sándwich Vegetariano", Price: 28000, Category: "Sándwiches", Description: "Vegetales asados, queso de cabra y pesto"},

	{Name: "Sopa del Día", Price: 22000, Category: "Sopas y Ensaladas", Description: "Preparación fresca del chef"},
	{Name: "Ensalada César", Price: 26000, Category: "Sopas y Ensaladas", Description: "Lechuga romana, pollo, crutones y parmesano"},
	{Name: "Ensalada de Quinoa", Price: 28000, Category: "Sopas y Ensaladas", Description: "Quinoa, aguacate, tomate y vinagreta de cítricos"},

	{Name: "Tiramisú", Price: 18000, Category: "Postres", Description: "Tradicional postre italiano con café y mascarpone"},
	{Name: "Cheesecake", Price: 20000, Category: "Postres", Description: "Con salsa de frutos rojos"},
	{Name: "Selección de Frutas", Price: 15000, Category: "Postres", Description: "Frutas frescas de temporada"},

	{Name: "Jugo Natural", Price: 12000, Category: "Bebidas", Description: "Naranja, mandarina, piña o frutos rojos"},
	{Name: "Café Especial Colombiano", Price: 8000, Category: "Bebidas", Description: "Servido en prensa francesa"},
	{Name: "Limonada de Coco", Price: 14000, Category: "Bebidas", Description: "Limonada con crema de coco"},
	{Name: "Cerveza Local", Price: 15000, Category: "Bebidas", Description: "Cervezas artesanales de Medellín"},
}
