// ABOUTME: Default feed configuration shipped with the client
// ABOUTME: Fourteen topic categories with three curated sources each

package registry

import "briefly-news-core/core/domain"

func defaultCategories() map[string][]domain.FeedSource {
	return map[string][]domain.FeedSource{
		"technology": {
			{Name: "TechCrunch", URL: "https://techcrunch.com/feed/", Category: "technology"},
			{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index", Category: "technology"},
			{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Category: "technology"},
		},
		"business": {
			{Name: "Reuters Business", URL: "https://feeds.reuters.com/reuters/businessNews", Category: "business"},
			{Name: "Bloomberg", URL: "https://feeds.bloomberg.com/markets/news.rss", Category: "business"},
			{Name: "Business Insider", URL: "https://feeds.businessinsider.com/custom/all", Category: "business"},
		},
		"sports": {
			{Name: "ESPN", URL: "https://www.espn.com/espn/rss/news", Category: "sports"},
			{Name: "BBC Sport", URL: "http://feeds.bbci.co.uk/sport/rss.xml", Category: "sports"},
			{Name: "Sports Illustrated", URL: "https://www.si.com/rss/si_topstories.rss", Category: "sports"},
		},
		"entertainment": {
			{Name: "Entertainment Weekly", URL: "https://ew.com/feed/", Category: "entertainment"},
			{Name: "Variety", URL: "https://variety.com/feed/", Category: "entertainment"},
			{Name: "The Hollywood Reporter", URL: "https://www.hollywoodreporter.com/feed/", Category: "entertainment"},
		},
		"science": {
			{Name: "Science Daily", URL: "https://www.sciencedaily.com/rss/all.xml", Category: "science"},
			{Name: "Nature", URL: "https://www.nature.com/nature.rss", Category: "science"},
			{Name: "Scientific American", URL: "https://rss.sciam.com/ScientificAmerican-Global", Category: "science"},
		},
		"world": {
			{Name: "BBC World", URL: "http://feeds.bbci.co.uk/news/world/rss.xml", Category: "world"},
			{Name: "Reuters World", URL: "https://feeds.reuters.com/Reuters/worldNews", Category: "world"},
			{Name: "AP World News", URL: "https://feeds.apnews.com/rss/apf-worldnews", Category: "world"},
		},
		"health": {
			{Name: "WebMD", URL: "https://rssfeeds.webmd.com/rss/rss.aspx?RSSSource=RSS_PUBLIC", Category: "health"},
			{Name: "Health News", URL: "https://www.medicalnewstoday.com/rss", Category: "health"},
			{Name: "Harvard Health", URL: "https://www.health.harvard.edu/rss", Category: "health"},
		},
		"ai": {
			{Name: "AI News", URL: "https://artificialintelligence-news.com/feed/", Category: "ai"},
			{Name: "MIT AI", URL: "https://news.mit.edu/rss/topic/artificial-intelligence2", Category: "ai"},
			{Name: "OpenAI Blog", URL: "https://openai.com/blog/rss.xml", Category: "ai"},
		},
		"hollywood": {
			{Name: "Variety", URL: "https://variety.com/feed/", Category: "hollywood"},
			{Name: "The Hollywood Reporter", URL: "https://www.hollywoodreporter.com/feed/", Category: "hollywood"},
			{Name: "Deadline", URL: "https://deadline.com/feed/", Category: "hollywood"},
		},
		"defence": {
			{Name: "Defense News", URL: "https://www.defensenews.com/arc/outboundfeeds/rss/", Category: "defence"},
			{Name: "Military Times", URL: "https://www.militarytimes.com/arc/outboundfeeds/rss/", Category: "defence"},
			{Name: "Jane's Defence", URL: "https://www.janes.com/feeds/defence-news", Category: "defence"},
		},
		"politics": {
			{Name: "Politico", URL: "https://www.politico.com/rss/politics08.xml", Category: "politics"},
			{Name: "The Hill", URL: "https://thehill.com/news/feed/", Category: "politics"},
			{Name: "Reuters Politics", URL: "https://feeds.reuters.com/reuters/politicsNews", Category: "politics"},
		},
		"automobile": {
			{Name: "Motor Trend", URL: "https://www.motortrend.com/feed/", Category: "automobile"},
			{Name: "Car and Driver", URL: "https://www.caranddriver.com/rss/all.xml/", Category: "automobile"},
			{Name: "Automotive News", URL: "https://www.autonews.com/rss.xml", Category: "automobile"},
		},
		"space": {
			{Name: "Space.com", URL: "https://www.space.com/feeds/all", Category: "space"},
			{Name: "SpaceNews", URL: "https://spacenews.com/feed/", Category: "space"},
			{Name: "NASA News", URL: "https://www.nasa.gov/rss/dyn/breaking_news.rss", Category: "space"},
		},
		"economy": {
			{Name: "Financial Times", URL: "https://www.ft.com/rss/home", Category: "economy"},
			{Name: "Wall Street Journal", URL: "https://feeds.a.dj.com/rss/RSSMarketsMain.xml", Category: "economy"},
			{Name: "Reuters Economy", URL: "https://feeds.reuters.com/reuters/economicNews", Category: "economy"},
		},
	}
}
