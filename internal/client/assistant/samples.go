package assistant

// SampleOCRText is what the mock returns as extracted text.
const SampleOCRText = `INVOICE #1234
Date: May 15, 2023

From:
ABC Company
123 Business Street
Business City, BC 12345

Bill To:
John Smith
123 Main Street
Anytown, CA 12345

Description                   Quantity    Rate    Amount
Web Development Services      40 hours    $75     $3,000
UI/UX Design                  15 hours    $85     $1,275
Content Creation              5 hours     $65     $325

Subtotal                                          $4,600
Tax (8%)                                          $368
Total                                             $4,968

Payment Terms: Net 30
Due Date: June 14, 2023

Thank you for your business!`

// SampleSummary is what the mock returns as a summary.
const SampleSummary = "This is an invoice (#1234) dated May 15, 2023, for web development services, UI/UX design, and content creation totaling $4,968 (including 8% tax). Payment is due by June 14, 2023."

// SampleTags are the mock tag suggestions.
var SampleTags = []string{"invoice", "web development", "design", "business expense", "tax deductible"}
