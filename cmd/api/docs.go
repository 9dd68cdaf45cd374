package main

// @title           Midnight Tickets API
// @version         1.0
// @description     API da vitrine e do back-office de vendas de ingressos Midnight

// @contact.name   Midnight
// @contact.email  soporte@midnight.events

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
