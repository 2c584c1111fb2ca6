package extraction

import (
	"fmt"
	"strings"

	"github.com/showroom-catalog/showroom/internal/models"
)

// BuildPrompt returns the extraction instructions for a listing URL. site
// is the supported listing domain and gets a dedicated image hint.
func BuildPrompt(url, site string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze this product URL: %s\n\n", url)
	b.WriteString(`I need a JSON response with the following fields.
**IMPORTANT: Translate 'title' and 'description' to Arabic if they are in another language.**

- "title": The listing title in Arabic.
- "description": A summary of the item details (specs, condition) in Arabic.
- "price": The price with currency (e.g., 120,000 DH).
`)
	fmt.Fprintf(&b, "- \"images\": An array of strings. Find up to %d valid image URLs for this product.\n", models.MaxImagesPerProduct)
	b.WriteString(`- "phoneNumber": Extract any visible phone number text (e.g., "0612345678"). Return null if not found.
- "whatsapp": Extract any explicit WhatsApp link (e.g., wa.me/..., api.whatsapp.com/...). Return null if not found.

**CRITICAL IMAGE INSTRUCTIONS**:
`)
	if site != "" {
		fmt.Fprintf(&b, "1. For **%s**: Look for the listing gallery images hosted by the site.\n", site)
	} else {
		b.WriteString("1. Look for the listing gallery images hosted by the site.\n")
	}
	b.WriteString(`2. For other sites: Collect 'og:image', product gallery tags, or 'twitter:image'.
3. **FALLBACK**: If no direct images are found in metadata, search for the listing title and return the top 3 image results.
4. Ensure all URLs start with 'http'.

**CONTACT INFO INSTRUCTIONS**:
- Aggressively look for phone numbers in the Title, Description, and specific "Seller Info" sections.
- If you see a button link that says "WhatsApp" or "Chat", extract that link into the "whatsapp" field.

Return ONLY raw JSON. No markdown.
`)

	return b.String()
}
