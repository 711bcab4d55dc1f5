package usecase

import (
	"bytes"
	"text/template"

	"github.com/Abidimam7/leadgen/internal/entity"
)

var leadPrompt = template.Must(template.New("leads").Parse(
	"Based on the following supplier information:\n\n" +
		"{{.Supplier}}\n\n" +
		"Generate a JSON array of potential business leads. " +
		"Each lead should be formatted as: " +
		`[{"company_name": "Example Inc.", "address": "123 St.", "email": "example@email.com", "phone": "1234567890"}]` + "\n\n" +
		"If unable to generate structured JSON, list leads in this format:\n" +
		"Company: Example Inc.\nAddress: 123 St.\nEmail: example@email.com\nPhone: 1234567890\n\n" +
		"Provide only the required output, no extra text.",
))

var emailPrompt = template.Must(template.New("email").Parse(`
Generate a highly professional sales email for {{.Supplier.CompanyName}} targeting {{.Lead.CompanyName}}.
Ensure the email is well-structured, persuasive, and includes clear formatting.

### **Email Structure:**
**Subject:** {{.Supplier.CompanyName}} - Exclusive Business Opportunity!

**Body:**
Dear {{.Recipient}},

I hope this email finds you well. I am {{.Supplier.ContactName}}, representing {{.Supplier.CompanyName}}.
We specialize in {{.Supplier.CompanyDescription}}, offering high-quality solutions tailored to your business needs.

I wanted to personally reach out to explore a potential collaboration between {{.Supplier.CompanyName}} and {{.Lead.CompanyName}}.
We believe our expertise and products can bring significant value to your operations.

### **Why Choose Us?**
- **Trusted Supplier** - {{.Supplier.CompanyName}} is known for {{.Supplier.CompanyDescription}}.
- **Competitive Pricing & Quality Assurance** - We ensure the best quality at the right price.
- **Client-Centric Approach** - Our team is dedicated to providing the best solutions tailored to your needs.

I would love to discuss this further at your convenience.
You can reach me directly at **{{.Supplier.ContactPhone}}** or reply to this email to schedule a call.

Looking forward to the opportunity to collaborate.

Best regards,
**{{.Supplier.ContactName}}**
{{.Supplier.CompanyName}}
{{.Supplier.ContactPhone}}
{{.Supplier.ContactEmail}}
[Visit Our Website]({{.Supplier.CompanyWebsite}})

---

**Instructions for AI:**
- Maintain a **formal, polished tone**.
- Use **markdown formatting** for structured readability.
- Ensure proper spacing, bullet points, and bold highlights for professionalism.
`))

func buildLeadPrompt(supplierInfo string) (string, error) {
	var b bytes.Buffer
	if err := leadPrompt.Execute(&b, struct{ Supplier string }{supplierInfo}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func buildEmailPrompt(s *entity.Supplier, l *entity.Lead) (string, error) {
	var b bytes.Buffer
	err := emailPrompt.Execute(&b, struct {
		Supplier  *entity.Supplier
		Lead      *entity.Lead
		Recipient string
	}{s, l, "Sir/Madam"})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
