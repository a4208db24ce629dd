package config

// CompareConfig names the two gateways compared by the compare command
type CompareConfig struct {
	GatewayA string `json:"gateway_a,omitempty" yaml:"gateway_a,omitempty" validate:"omitempty,url"`
	GatewayB string `json:"gateway_b,omitempty" yaml:"gateway_b,omitempty" validate:"omitempty,url"`
}

func NewDefaultCompareConfig() CompareConfig {
	return CompareConfig{
		GatewayA: DefaultCompareGatewayA,
		GatewayB: DefaultCompareGatewayB,
	}
}
