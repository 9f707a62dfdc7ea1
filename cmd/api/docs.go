package main

// @title           Soltta Meias API
// @version         1.0
// @description     API da loja de meias Soltta: catálogo, carrinho, pedidos, pagamento e frete

// @contact.name   Soltta Meias
// @contact.email  contato@solttameias.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
