package entity

// PillarDefinition identifies a technology pillar analyzed for RFP responses.
// Question templates contain a {product} placeholder; the first template is the
// phase-one overview question.
type PillarDefinition struct {
	Name        string
	Description string
	Context     string
	Questions   []string
}

// DefaultModelID is used when a product has no catalog entry.
const DefaultModelID = "TechnologyOverview"

// pillarOrder fixes the listing order of the catalog.
var pillarOrder = []string{"Architecture", "Extensibility", "DevOps", "Security", "Observability", "Integration"}

// TechnologyPillars is the static pillar catalog, defined at process start and
// never mutated.
var TechnologyPillars = map[string]PillarDefinition{
	"Architecture": {
		Name:        "Architecture",
		Description: "Overall system architecture, deployment options, cloud capabilities, and infrastructure design",
		Context:     "focus on architectural overview, deployment options, cloud capabilities, and infrastructure design",
		Questions: []string{
			"What is the overall architectural approach and design philosophy of {product}?",
			"What are the main architectural components and how do they interact with each other?",
			"What deployment options are available (cloud, on-premises, hybrid) and their characteristics?",
			"How does {product} handle scalability and what are the scaling mechanisms?",
			"What are the high availability and disaster recovery architectural features?",
			"How is {product} designed for performance and what are the key performance characteristics?",
			"What architectural patterns are used (microservices, layered, event-driven) and why?",
			"How does the architecture support different deployment environments and configurations?",
			"What containerization and orchestration technologies are used in {product}?",
			"How does {product} implement event-driven architecture and messaging patterns?",
			"What are the specific cloud-native features and capabilities of {product}?",
			"How does {product} handle data consistency and transaction management across distributed components?",
			"What are the specific API management and gateway capabilities in {product}?",
			"What are the data architecture and data flow patterns in {product}?",
			"How does {product} support multi-tenancy and tenant isolation?",
		},
	},
	"Extensibility": {
		Name:        "Extensibility",
		Description: "Extensibility features, customization capabilities, configuration tools, and developer frameworks",
		Context:     "focus on extensibility features, customization capabilities, configuration tools, and developer frameworks",
		Questions: []string{
			"What extensibility and customization capabilities are available for tailoring {product}?",
			"What development tools, frameworks, and APIs are provided for customization?",
			"How can {product} be configured and customized without modifying core code?",
			"What plugin and extension mechanisms are available for adding new functionality?",
			"How does {product} support third-party integrations and custom adapters?",
			"What low-code or no-code development capabilities are available?",
			"How does {product} handle configuration management and environment-specific settings?",
			"What testing and validation tools are available for custom extensions?",
		},
	},
	"DevOps": {
		Name:        "DevOps",
		Description: "Deployment automation, CI/CD capabilities, testing frameworks, and operational tools",
		Context:     "focus on deployment automation, CI/CD capabilities, testing frameworks, and operational tools",
		Questions: []string{
			"What DevOps and deployment automation capabilities are available in {product}?",
			"What CI/CD pipeline features and automation tools are provided?",
			"How does {product} support automated testing and quality assurance?",
			"What deployment strategies and rollback mechanisms are available?",
			"How does {product} handle infrastructure management and provisioning?",
			"What monitoring and alerting capabilities are available for operations?",
			"How does {product} support continuous integration and continuous deployment?",
			"What operational tools and dashboards are available for system management?",
		},
	},
	"Security": {
		Name:        "Security",
		Description: "Security features, compliance standards, authentication, authorization, and data protection",
		Context:     "focus on security features, compliance standards, authentication, authorization, and data protection",
		Questions: []string{
			"What security features and capabilities are built into {product}?",
			"How does {product} handle authentication and user identity management?",
			"What authorization and access control mechanisms are available?",
			"What encryption and data protection features are provided?",
			"What compliance standards and regulatory requirements are supported?",
			"How does {product} handle security monitoring and threat detection?",
			"What audit and logging capabilities are available for security events?",
			"How does {product} support security policies and governance?",
			"What are the specific identity and access management capabilities in {product}?",
			"How does {product} implement multi-factor authentication and single sign-on?",
			"What are the data encryption standards and key management practices in {product}?",
			"How does {product} handle security auditing and compliance reporting?",
			"What are the network security and firewall capabilities in {product}?",
			"How does {product} implement vulnerability management and security scanning?",
			"What are the incident response and security monitoring capabilities in {product}?",
		},
	},
	"Observability": {
		Name:        "Observability",
		Description: "Monitoring capabilities, logging, metrics, dashboards, and operational visibility",
		Context:     "focus on monitoring capabilities, logging, metrics, dashboards, and operational visibility",
		Questions: []string{
			"What observability and monitoring capabilities are available in {product}?",
			"What logging and audit trail features are provided?",
			"What metrics collection and performance monitoring tools are available?",
			"What dashboards and reporting capabilities are provided for operations?",
			"How does {product} handle alerting and notification management?",
			"What tracing and debugging capabilities are available for troubleshooting?",
			"How does {product} support operational analytics and insights?",
			"What health monitoring and status reporting features are available?",
		},
	},
	"Integration": {
		Name:        "Integration",
		Description: "API capabilities, integration patterns, data streaming, and connectivity options",
		Context:     "focus on API capabilities, integration patterns, data streaming, and connectivity options",
		Questions: []string{
			"What integration capabilities and connectivity options are available in {product}?",
			"What APIs and web services are provided for system integration?",
			"How does {product} support real-time data streaming and event processing?",
			"What messaging and queuing capabilities are available for integration?",
			"How does {product} handle data synchronization and consistency?",
			"What protocol support and communication standards are available?",
			"How does {product} support batch processing and file-based integration?",
			"What integration monitoring and error handling capabilities are provided?",
		},
	},
}

// ProductCatalog maps human product labels to remote RAG model identifiers.
var ProductCatalog = map[string]string{
	"Transact":        "TechnologyOverview",
	"Wealth":          "FuncTransactWealth",
	"Digital":         "digital_model",
	"TAP":             "TechTAP",
	"Payments":        "Payments",
	"Analytics":       "Analytics",
	"DataHub":         "DataHub",
	"ModularBanking":  "ModularBanking",
	"SaaS":            "SaaSUniformTerms",
	"FCM":             "FuncFCM",
	"TransactWealth":  "FuncTransactWealth",
	"TAPWealth":       "funcWealthTAP",
	"TransactGeneric": "FuncTransactGeneric",
}

// categoryToModel is the full category map used to advertise available models.
var categoryToModel = map[string]string{
	"Temenos Annual Reports":  "InvestorRelations",
	"Policies":                "TemenosPolicies",
	"Analytics":               "Analytics",
	"Payments Hub":            "FuncPaymentsHub",
	"Transact":                "TechnologyOverview",
	"TAP":                     "TechTAP",
	"Digital":                 "digital_model",
	"Modular Banking":         "ModularBanking",
	"Data Hub":                "DataHub",
	"Data Source":             "DataSource",
	"Extensibility Framework": "ExtensibilityAdvisor",
	"Security":                "SecurityFramework",
	"SaaS":                    "SaaSUniformTerms",
	"Transact Wealth":         "FuncTransactWealth",
	"FCM":                     "FuncFCM",
	"TAP Wealth":              "funcWealthTAP",
	"Payments":                "Payments",
	"Transact Generic":        "FuncTransactGeneric",
}

// modelOrder keeps /api/models output deterministic.
var modelOrder = []string{
	"Temenos Annual Reports", "Policies", "Analytics", "Payments Hub", "Transact",
	"TAP", "Digital", "Modular Banking", "Data Hub", "Data Source",
	"Extensibility Framework", "Security", "SaaS", "Transact Wealth", "FCM",
	"TAP Wealth", "Payments", "Transact Generic",
}

// PillarNames returns the pillar catalog names in listing order.
func PillarNames() []string {
	names := make([]string, 0, len(pillarOrder))
	names = append(names, pillarOrder...)
	return names
}

// LookupPillar returns the definition of a pillar, or ErrUnknownPillar.
func LookupPillar(name string) (PillarDefinition, error) {
	def, ok := TechnologyPillars[name]
	if !ok {
		return PillarDefinition{}, ErrUnknownPillar
	}
	return def, nil
}

// ModelForProduct maps a product label to its RAG model identifier, falling
// back to DefaultModelID for unknown products.
func ModelForProduct(product string) string {
	if model, ok := ProductCatalog[product]; ok {
		return model
	}
	return DefaultModelID
}

// AvailableModels returns the advertised RAG model identifiers.
func AvailableModels() []string {
	models := make([]string, 0, len(modelOrder))
	for _, category := range modelOrder {
		models = append(models, categoryToModel[category])
	}
	return models
}
