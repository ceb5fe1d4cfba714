package usecases

// UseCases agrupa todos os casos de uso da aplicação.
type UseCases struct {
	Lead    *LeadUseCase
	Traffic *TrafficUseCase
	Launch  *LaunchUseCase
	Config  *ConfigUseCase
}
