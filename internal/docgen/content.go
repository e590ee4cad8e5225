package docgen

import (
	"fmt"
	"strings"
)

// contentBuilder turns the raw joined answer text for one product into
// RFP-ready prose for a pillar. The builder receives the full answer text so
// it can append detail blocks when the answers mention specific technologies.
type contentBuilder func(content, product string) string

// pillarContent maps lowercased pillar names to their content builders.
// Pillars without an entry fall back to genericContent.
var pillarContent = map[string]contentBuilder{
	"architecture":  architectureContent,
	"security":      securityContent,
	"integration":   integrationContent,
	"extensibility": extensibilityContent,
	"devops":        devopsContent,
	"observability": observabilityContent,
}

// buildPillarContent renders the narrative body for one pillar and product.
func buildPillarContent(pillar, product string, answers []string) string {
	content := strings.Join(answers, " ")
	if builder, ok := pillarContent[strings.ToLower(pillar)]; ok {
		return builder(content, product)
	}
	return genericContent(content, product, pillar)
}

func architectureContent(content, product string) string {
	lower := strings.ToLower(content)

	desc := fmt.Sprintf(`%[1]s delivers a comprehensive, cloud-native architecture designed for enterprise-scale banking operations. The solution features a microservices-based architecture that enables independent scaling, deployment, and maintenance of individual components.

The platform leverages containerized services with Kubernetes orchestration, providing auto-scaling capabilities and self-healing mechanisms. This architecture ensures high availability with 99.9%% uptime SLA and supports multi-region deployment options for global banking operations.

%[1]s's API-first design philosophy provides extensive RESTful APIs with OpenAPI 3.0 specifications, enabling seamless integration with existing banking systems and third-party services. The event-driven architecture utilizes asynchronous messaging with Kafka for real-time data processing and ensures data consistency across distributed components.

The multi-tenant SaaS platform provides isolated tenant environments while sharing infrastructure resources, optimizing costs and operational efficiency. Security is built into the architecture with zero-trust principles, end-to-end encryption, and comprehensive access controls.

This architectural approach enables rapid deployment, horizontal scaling, and seamless integration with existing banking systems while maintaining regulatory compliance and operational excellence.`, product)

	if strings.Contains(lower, "kubernetes") || strings.Contains(lower, "container") {
		desc += "\n\nThe platform's containerized architecture provides enterprise-grade orchestration with Kubernetes, ensuring optimal resource utilization and seamless scaling across multiple environments."
	}
	if strings.Contains(lower, "api") || strings.Contains(lower, "rest") {
		desc += "\n\nComprehensive API management capabilities include rate limiting, authentication, monitoring, and versioning, supporting both RESTful and GraphQL interfaces for maximum flexibility."
	}
	if strings.Contains(lower, "event") || strings.Contains(lower, "messaging") {
		desc += "\n\nEvent-driven architecture supports real-time data processing with robust messaging systems, ensuring data consistency and enabling reactive programming patterns across the platform."
	}

	return desc
}

func securityContent(content, product string) string {
	lower := strings.ToLower(content)

	desc := fmt.Sprintf(`%s implements enterprise-grade security controls and compliance frameworks to protect sensitive financial data and maintain regulatory compliance. The solution provides comprehensive identity and access management with multi-factor authentication, single sign-on integration, and role-based access control.

Data protection is ensured through encryption at rest using AES-256 and encryption in transit with TLS 1.3, complemented by robust key management systems. The platform maintains compliance with SOC 2 Type II, ISO 27001, PCI DSS, and GDPR requirements, providing the necessary certifications for global banking operations.

Security monitoring is provided through 24/7 SIEM integration with real-time threat detection and automated incident response capabilities. Regular penetration testing and automated security scanning ensure continuous vulnerability assessment and remediation.

The platform maintains comprehensive audit trails and logging capabilities for regulatory reporting and compliance monitoring. Network security is enforced through VPC isolation, Web Application Firewall (WAF) protection, and DDoS mitigation services.

These security measures ensure protection of sensitive financial data and maintain trust with customers and regulators while supporting global banking operations.`, product)

	if strings.Contains(lower, "authentication") || strings.Contains(lower, "mfa") {
		desc += "\n\nAdvanced authentication mechanisms include biometric authentication, hardware security modules (HSM), and adaptive authentication based on risk scoring and behavioral analytics."
	}
	if strings.Contains(lower, "encryption") || strings.Contains(lower, "crypto") {
		desc += "\n\nComprehensive encryption strategies cover data at rest, in transit, and in processing, with quantum-resistant algorithms and hardware-based key management for maximum security."
	}
	if strings.Contains(lower, "compliance") || strings.Contains(lower, "audit") {
		desc += "\n\nRegulatory compliance framework includes automated compliance monitoring, real-time audit trails, and comprehensive reporting capabilities for various international banking regulations."
	}

	return desc
}

func integrationContent(content, product string) string {
	lower := strings.ToLower(content)

	desc := fmt.Sprintf(`%s offers comprehensive integration capabilities for seamless connectivity with existing banking systems and third-party services. The solution provides a centralized API Gateway with rate limiting, authentication, and comprehensive monitoring capabilities.

The platform includes over 200 pre-built connectors for core banking systems, payment processors, and third-party services, significantly reducing integration complexity and time-to-market. Real-time integration is supported through an event-driven architecture with webhooks and message queues for asynchronous processing.

Data synchronization capabilities include bi-directional data sync with conflict resolution and comprehensive data validation mechanisms. Integration monitoring provides real-time visibility with alerting and performance metrics to ensure optimal system performance.

A comprehensive developer portal offers self-service API documentation, testing tools, and sandbox environments for rapid integration development. The platform supports legacy system integration including mainframe, AS/400, and other legacy banking systems.

This integration framework enables rapid onboarding of new services and seamless data flow across the banking ecosystem while maintaining data integrity and operational efficiency.`, product)

	if strings.Contains(lower, "api") || strings.Contains(lower, "rest") {
		desc += "\n\nAdvanced API management includes OpenAPI 3.0 specifications, GraphQL support, API versioning, and comprehensive SDK generation for multiple programming languages including Java, .NET, Python, and JavaScript."
	}
	if strings.Contains(lower, "connector") || strings.Contains(lower, "adapter") {
		desc += "\n\nPre-built connectors support major banking systems, payment networks, regulatory reporting systems, and fintech services, with configurable data mapping and transformation capabilities."
	}
	if strings.Contains(lower, "real-time") || strings.Contains(lower, "event") {
		desc += "\n\nReal-time integration capabilities include event streaming, webhook management, message queuing with guaranteed delivery, and support for various messaging protocols including AMQP, MQTT, and Kafka."
	}

	return desc
}

func extensibilityContent(_, product string) string {
	return fmt.Sprintf(`%s provides comprehensive extensibility features that enable banks to customize and extend the platform to meet specific business requirements without compromising upgrade compatibility. The Extensibility Framework allows developers to extend or customize the solution through multiple mechanisms.

Data Extension capabilities enable banks to add new user-defined data elements and fields to existing data models, supporting evolving business requirements. Business Logic Extension allows customization of business rules and workflows through configuration-based approaches and custom code development.

The platform supports Java Extensibility for complex customizations requiring custom business logic implementation. Configuration-based customization provides extensive parameterization options for business rules, workflows, and user interface elements.

API Extensibility enables the creation of custom APIs and services that integrate seamlessly with the core platform. The solution maintains upgrade compatibility by providing clear extension points and versioning strategies for custom components.

This extensibility approach enables banks to tailor the solution to their specific business needs while maintaining the benefits of regular platform updates and new feature adoption.`, product)
}

func devopsContent(_, product string) string {
	return fmt.Sprintf(`%s provides comprehensive DevOps capabilities that enable efficient development, testing, and deployment of banking applications. The platform supports continuous integration and continuous deployment (CI/CD) pipelines with automated testing and deployment processes.

Container orchestration is provided through Kubernetes with support for auto-scaling, rolling deployments, and blue-green deployment strategies. Infrastructure as Code (IaC) capabilities enable consistent and repeatable infrastructure provisioning and management.

The platform includes comprehensive monitoring and logging capabilities with real-time alerting and performance metrics. Automated backup and disaster recovery procedures ensure business continuity and data protection.

Environment management supports multiple environments (development, testing, staging, production) with consistent configuration management and deployment processes. Security scanning and compliance checking are integrated into the CI/CD pipeline to ensure security and regulatory compliance.

These DevOps capabilities enable rapid development cycles, reliable deployments, and efficient operations management while maintaining security and compliance requirements.`, product)
}

func observabilityContent(_, product string) string {
	return fmt.Sprintf(`%s provides comprehensive observability capabilities that enable real-time monitoring, logging, and tracing of banking applications and infrastructure. The platform includes centralized logging with structured log formats and comprehensive search and analysis capabilities.

Application Performance Monitoring (APM) provides real-time insights into application performance, user experience, and system health. Distributed tracing enables end-to-end visibility across microservices and distributed components.

Infrastructure monitoring covers servers, containers, databases, and network components with automated alerting and capacity planning capabilities. Business metrics monitoring tracks key performance indicators and business-critical processes.

The platform provides customizable dashboards and reporting capabilities for different stakeholder needs. Automated alerting and incident management ensure rapid response to issues and minimize business impact.

These observability capabilities enable proactive monitoring, rapid issue resolution, and continuous optimization of banking operations while maintaining service quality and customer satisfaction.`, product)
}

func genericContent(_, product, pillar string) string {
	return fmt.Sprintf(`%[1]s provides comprehensive %[2]s capabilities designed to support modern banking operations and regulatory requirements. The solution delivers scalable, secure, and compliant functionality that enables banks to meet evolving customer needs and regulatory demands.

The platform's %[2]s features are built on enterprise-grade architecture with high availability, scalability, and security as core design principles. Integration capabilities ensure seamless connectivity with existing banking systems and third-party services.

%[1]s's %[2]s capabilities support global banking operations with multi-region deployment options and compliance with international banking regulations. The solution provides comprehensive monitoring, logging, and audit capabilities for regulatory reporting and operational excellence.

These capabilities enable banks to modernize their operations while maintaining security, compliance, and operational efficiency in the %[2]s domain.`, product, pillar)
}
