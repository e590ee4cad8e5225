package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/entity"
)

// DemoConnector returns deterministic canned responses keyed by keywords in
// the question text. Used for offline development and testing; performs no
// network I/O.
type DemoConnector struct {
	logger *zap.Logger
}

func NewDemoConnector(logger *zap.Logger) *DemoConnector {
	return &DemoConnector{logger: logger}
}

func (d *DemoConnector) TestConnection(ctx context.Context) bool {
	return true
}

func (d *DemoConnector) Query(ctx context.Context, question, region, modelID, pillarContext string) (*entity.RAGResponse, error) {
	ctxzap.Debug(ctx, "[DEMO] answering RAG query",
		zap.String("model_id", modelID),
		zap.String("region", region),
	)

	answer := demoAnswer(question, modelID)

	return &entity.RAGResponse{
		Status: "success",
		Data: &entity.RAGResponseData{
			Question:      question,
			Region:        region,
			ModelIDs:      []string{modelID},
			Answer:        answer,
			ContextUsed:   pillarContext != "",
			ModelsQueried: 1,
		},
		Metadata: &entity.RAGResponseMetadata{
			APIVersion:     "v1.0",
			Timestamp:      time.Now().Format(time.RFC3339),
			ResponseLength: len(answer),
			QueryType:      "single_model",
		},
	}, nil
}

func demoAnswer(question, modelID string) string {
	lower := strings.ToLower(question)

	switch {
	case strings.Contains(lower, "architecture"):
		return fmt.Sprintf(`Temenos %s provides a comprehensive, cloud-native architecture designed for scalability and resilience. The solution features:

• Microservices Architecture: containerized services with independent scaling and deployment capabilities
• API-First Design: RESTful APIs with OpenAPI 3.0 specifications for seamless integration
• Event-Driven Architecture: asynchronous messaging with Kafka for real-time data processing
• Multi-Tenant SaaS Platform: isolated tenant environments with shared infrastructure
• Cloud-Native Deployment: Kubernetes orchestration with auto-scaling and self-healing capabilities
• High Availability: 99.9%% uptime SLA with multi-region deployment options
• Security by Design: zero-trust architecture with end-to-end encryption

This architecture enables rapid deployment, horizontal scaling, and seamless integration with existing banking systems while maintaining regulatory compliance and operational excellence.`, modelID)

	case strings.Contains(lower, "security"):
		return fmt.Sprintf(`Temenos %s implements enterprise-grade security controls and compliance frameworks:

• Identity & Access Management: multi-factor authentication, SSO integration, and role-based access control
• Data Protection: encryption at rest (AES-256) and in transit (TLS 1.3) with key management
• Regulatory Compliance: SOC 2 Type II, ISO 27001, PCI DSS, and GDPR compliance
• Security Monitoring: 24/7 SIEM integration with real-time threat detection
• Vulnerability Management: regular penetration testing and automated security scanning
• Audit Trail: comprehensive logging and audit capabilities for regulatory reporting
• Network Security: VPC isolation, WAF protection, and DDoS mitigation

These security measures ensure protection of sensitive financial data and maintain trust with customers and regulators.`, modelID)

	case strings.Contains(lower, "integration"):
		return fmt.Sprintf(`Temenos %s offers comprehensive integration capabilities for seamless connectivity:

• API Gateway: centralized API management with rate limiting, authentication, and monitoring
• Pre-built Connectors: 200+ connectors for core banking, payment systems, and third-party services
• Real-time Integration: event-driven architecture with webhooks and message queues
• Data Synchronization: bi-directional data sync with conflict resolution and data validation
• Integration Monitoring: real-time monitoring with alerting and performance metrics
• Developer Portal: self-service API documentation and testing tools
• Legacy System Integration: support for mainframe, AS/400, and other legacy systems

This integration framework enables rapid onboarding of new services and seamless data flow across the banking ecosystem.`, modelID)

	default:
		return fmt.Sprintf(`Temenos %s provides comprehensive capabilities for modern banking operations:

• Scalable Platform: cloud-native architecture supporting millions of transactions
• Real-time Processing: sub-second response times for critical banking operations
• Regulatory Compliance: built-in compliance with international banking regulations
• API-First Design: extensive API library for seamless third-party integrations
• Advanced Analytics: AI-powered insights for risk management and customer experience
• Multi-Channel Support: unified platform for digital, mobile, and branch operations
• Global Deployment: multi-region support with local data residency options

This solution enables banks to modernize their operations while maintaining security, compliance, and operational excellence.`, modelID)
	}
}
