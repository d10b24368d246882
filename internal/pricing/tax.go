package pricing

// ServiceType identifies the kind of service being quoted.
type ServiceType string

const (
	// ServiceTypeTransfer is a point-to-point transfer.
	ServiceTypeTransfer ServiceType = "transfer"
	// ServiceTypeService is an hourly or tour service.
	ServiceTypeService ServiceType = "service"
)

// CalculateTax computes the sales tax for an amount. Transfers are exempt
// when applyToTransfers is off and services when applyToServices is off;
// any other (or empty) service type is always taxed at the full rate.
func CalculateTax(cfg TaxSettings, amount float64, serviceType ServiceType) float64 {
	if serviceType == ServiceTypeTransfer && !cfg.ApplyToTransfers {
		return 0
	}

	if serviceType == ServiceTypeService && !cfg.ApplyToServices {
		return 0
	}

	return amount * cfg.SalesTaxRate / 100
}
