package types

// ModuleName is the machine key of a feature module. The set of valid keys is
// closed: rows in the module catalog only carry display metadata for one of
// these names, never a new name.
type ModuleName string

const (
	ModuleBilling            ModuleName = "billing"
	ModuleWhatsappShare      ModuleName = "whatsapp_share"
	ModuleInventory          ModuleName = "inventory"
	ModuleTemplateConfig     ModuleName = "template_config"
	ModuleKotPrinting        ModuleName = "kot_printing"
	ModuleMenuManagement     ModuleName = "menu_management"
	ModuleTableManagement    ModuleName = "table_management"
	ModuleReports            ModuleName = "reports"
	ModuleCustomerManagement ModuleName = "customer_management"
	ModuleMultiOutlet        ModuleName = "multi_outlet"
	ModuleOnlineOrdering     ModuleName = "online_ordering"
	ModuleLoyaltyProgram     ModuleName = "loyalty_program"
	ModuleStaffManagement    ModuleName = "staff_management"
	ModuleAnalyticsDashboard ModuleName = "analytics_dashboard"
)

// KnownModuleNames lists every valid module key, in catalog order.
var KnownModuleNames = []ModuleName{
	ModuleBilling,
	ModuleWhatsappShare,
	ModuleInventory,
	ModuleTemplateConfig,
	ModuleKotPrinting,
	ModuleMenuManagement,
	ModuleTableManagement,
	ModuleReports,
	ModuleCustomerManagement,
	ModuleMultiOutlet,
	ModuleOnlineOrdering,
	ModuleLoyaltyProgram,
	ModuleStaffManagement,
	ModuleAnalyticsDashboard,
}

var knownModuleSet = func() map[ModuleName]struct{} {
	m := make(map[ModuleName]struct{}, len(KnownModuleNames))
	for _, name := range KnownModuleNames {
		m[name] = struct{}{}
	}
	return m
}()

// IsKnownModule reports whether name is one of the registered module keys.
func IsKnownModule(name ModuleName) bool {
	_, ok := knownModuleSet[name]
	return ok
}
