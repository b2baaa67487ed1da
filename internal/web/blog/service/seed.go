package service

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// demoPosts the trading corpus shipped with the demo deployment.
// Statuses are written as-is, bypassing the pending default, so the
// moderation queue and public listing start populated.
var demoPosts = []*model.Post{
	{
		ID:          "post_1",
		Slug:        "day-trading-strategies",
		Title:       "5 Effective Day Trading Strategies for Beginners",
		Date:        "2023-05-15",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Learn the most effective day trading strategies that can help beginners navigate the volatile markets with confidence.",
		Category:    "TRADING STRATEGIES",
		ReadingTime: "5 MIN READ",
		Content:     "# 5 Effective Day Trading Strategies for Beginners\n\nDay trading requires discipline, focus, and a solid strategy. Here are five effective approaches for beginners:\n\n## 1. Trend Following\n\nThis strategy involves identifying the direction of market momentum and entering trades that align with that direction.\n\n## 2. Breakout Trading\n\nBreakout traders capitalize on moments when price moves outside an established range with increased volume.\n\n## 3. Reversal Trading\n\nThis approach focuses on identifying when a trend is about to change direction and positioning accordingly.\n\n## 4. Gap and Go\n\nThis strategy targets stocks that gap up or down at market open, entering in the direction of the gap.\n\n## 5. Scalping\n\nScalping involves making numerous trades throughout the day, aiming to profit from small price movements.",
		Status:      model.PostStatusApproved,
		AuthorID:    "user_123",
	},
	{
		ID:          "post_2",
		Slug:        "technical-analysis-basics",
		Title:       "Technical Analysis Fundamentals Every Trader Should Know",
		Date:        "2023-06-20",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Master the essential technical analysis tools and indicators that form the foundation of successful trading strategies.",
		Category:    "TECHNICAL ANALYSIS",
		ReadingTime: "7 MIN READ",
		Content:     "# Technical Analysis Fundamentals Every Trader Should Know\n\nTechnical analysis is a trading discipline that evaluates investments and identifies trading opportunities by analyzing statistical trends gathered from trading activity.\n\n## Support and Resistance\n\nThese are price levels where a stock has historically had difficulty falling below (support) or rising above (resistance).\n\n## Moving Averages\n\nMoving averages smooth out price data to create a single flowing line, making it easier to identify the direction of the trend.\n\n## Relative Strength Index (RSI)\n\nRSI is a momentum oscillator that measures the speed and change of price movements on a scale from 0 to 100.\n\n## MACD (Moving Average Convergence Divergence)\n\nMACD is a trend-following momentum indicator that shows the relationship between two moving averages of a security's price.\n\n## Candlestick Patterns\n\nCandlestick patterns are visual representations of price movements that can indicate potential market reversals or continuations.",
		Status:      model.PostStatusApproved,
		AuthorID:    "user_123",
	},
	{
		ID:          "post_3",
		Slug:        "risk-management-trading",
		Title:       "Risk Management: The Key to Long-Term Trading Success",
		Date:        "2023-07-10",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Discover why proper risk management is more important than any trading strategy and how to implement it effectively.",
		Category:    "RISK MANAGEMENT",
		ReadingTime: "6 MIN READ",
		Content:     "# Risk Management: The Key to Long-Term Trading Success\n\nRisk management is arguably the most important component of a trading plan. Without it, even the best strategy will eventually fail.\n\n## Position Sizing\n\nDetermining the appropriate amount of capital to allocate to each trade is crucial for managing risk effectively.\n\n## Stop-Loss Orders\n\nA stop-loss order is a predetermined price at which you'll exit a losing trade to prevent further losses.\n\n## Risk-Reward Ratio\n\nThe risk-reward ratio compares the potential profit of a trade to its potential loss. A favorable ratio is typically 1:2 or higher.\n\n## Diversification\n\nSpreading your capital across different markets, sectors, or strategies can help reduce overall portfolio risk.\n\n## Psychological Discipline\n\nMaintaining emotional control and sticking to your trading plan is essential for consistent risk management.",
		Status:      model.PostStatusApproved,
		AuthorID:    "user_123",
	},
	{
		ID:          "post_4",
		Slug:        "swing-trading-guide",
		Title:       "Complete Guide to Swing Trading in Volatile Markets",
		Date:        "2023-08-05",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Learn how to capture medium-term market moves with swing trading strategies designed for today's volatile markets.",
		Category:    "SWING TRADING",
		ReadingTime: "8 MIN READ",
		Content:     "# Complete Guide to Swing Trading in Volatile Markets\n\nSwing trading aims to capture gains in a stock within one to several days. It's ideal for those who can't monitor trades all day.\n\n## Identifying Swing Trading Opportunities\n\nLook for stocks showing strong momentum but approaching key support or resistance levels where a reversal might occur.\n\n## Technical Indicators for Swing Trading\n\nEffective indicators include moving averages, RSI, MACD, and Bollinger Bands to identify potential entry and exit points.\n\n## Fundamental Considerations\n\nWhile primarily technical, swing traders should be aware of upcoming earnings reports, economic data releases, or other events that could impact price.\n\n## Setting Profit Targets\n\nEstablish realistic profit targets based on previous price action, volatility, and key resistance/support levels.\n\n## Managing Volatility\n\nIn highly volatile markets, consider reducing position sizes and widening stop-loss orders to avoid being shaken out of otherwise good trades.",
		Status:      model.PostStatusApproved,
		AuthorID:    "user_123",
	},
	{
		ID:          "post_5",
		Slug:        "trading-psychology",
		Title:       "Trading Psychology: Overcoming Fear and Greed",
		Date:        "2023-09-12",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Explore the psychological aspects of trading and learn techniques to master your emotions for better trading outcomes.",
		Category:    "PSYCHOLOGY",
		ReadingTime: "6 MIN READ",
		Content:     "# Trading Psychology: Overcoming Fear and Greed\n\nTrading psychology refers to the emotions and mental state that influence your trading decisions. The two primary emotions that impact traders are fear and greed.\n\n## Understanding Fear in Trading\n\nFear can manifest as hesitation to enter trades, exiting profitable positions too early, or inability to cut losses when necessary.\n\n## The Impact of Greed\n\nGreed often leads to overtrading, excessive risk-taking, and holding positions too long in hopes of extracting maximum profit.\n\n## Developing Emotional Discipline\n\nCreating and following a detailed trading plan helps remove emotional decision-making from the equation.\n\n## Mindfulness Techniques\n\nPracticing mindfulness can help you recognize emotional states that might negatively impact your trading decisions.\n\n## Learning from Losses\n\nViewing losses as learning opportunities rather than failures can help develop a healthier psychological approach to trading.",
		Status:      model.PostStatusApproved,
		AuthorID:    "user_123",
	},
	{
		ID:          "post_6",
		Slug:        "crypto-trading-fundamentals",
		Title:       "Cryptocurrency Trading: Essential Strategies for 2023",
		Date:        "2023-10-18",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Discover specialized strategies for trading cryptocurrencies in the current market environment.",
		Category:    "CRYPTO TRADING",
		ReadingTime: "9 MIN READ",
		Content:     "# Cryptocurrency Trading: Essential Strategies for 2023\n\nCryptocurrency markets operate differently from traditional markets, requiring specialized knowledge and strategies.\n\n## Understanding Market Cycles\n\nCrypto markets tend to move in pronounced cycles of accumulation, uptrend, distribution, and downtrend. Identifying the current cycle phase is crucial.\n\n## On-Chain Analysis\n\nUnlike traditional markets, blockchain data provides unique insights into network activity, whale movements, and potential price catalysts.\n\n## Trading the Bitcoin Correlation\n\nMost altcoins maintain varying degrees of correlation with Bitcoin. Understanding these relationships can provide trading advantages.\n\n## Navigating Regulatory News\n\nCrypto markets are highly sensitive to regulatory developments. Staying informed about potential regulatory changes is essential.\n\n## Managing Extreme Volatility\n\nCryptocurrencies can experience significant price swings in short periods. Position sizing and strict risk management are particularly important in this market.",
		Status:      model.PostStatusApproved,
		AuthorID:    "user_123",
	},
	{
		ID:          "post_7",
		Slug:        "forex-trading-basics",
		Title:       "Forex Trading: A Beginner's Guide to Currency Markets",
		Date:        "2023-11-05",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Learn the fundamentals of forex trading and how to navigate the world's largest financial market.",
		Category:    "FOREX",
		ReadingTime: "7 MIN READ",
		Content:     "# Forex Trading: A Beginner's Guide to Currency Markets\n\nThe foreign exchange market is the largest financial market in the world, with trillions of dollars traded daily.\n\n## Understanding Currency Pairs\n\nForex trading involves buying one currency while simultaneously selling another, which is why currencies are quoted in pairs.\n\n## Major, Minor, and Exotic Pairs\n\nMajor pairs involve the US dollar, minor pairs don't include USD but involve major currencies, and exotic pairs include currencies from emerging economies.\n\n## Leverage and Margin\n\nForex trading typically involves leverage, allowing traders to control large positions with a relatively small amount of capital.\n\n## Best Times to Trade\n\nThe forex market operates 24 hours a day, but volatility and liquidity vary depending on which sessions are active.\n\n## Common Forex Trading Strategies\n\nPopular approaches include day trading, swing trading, position trading, and carry trading, each with different time horizons and objectives.",
		Status:      model.PostStatusPending,
		AuthorID:    "user_123",
	},
	{
		ID:          "post_8",
		Slug:        "options-trading-explained",
		Title:       "Options Trading Explained: Strategies for Beginners",
		Date:        "2023-11-15",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Understand the basics of options trading and learn beginner-friendly strategies to get started.",
		Category:    "OPTIONS",
		ReadingTime: "8 MIN READ",
		Content:     "# Options Trading Explained: Strategies for Beginners\n\nOptions provide traders with the right, but not the obligation, to buy or sell an asset at a predetermined price within a specific timeframe.\n\n## Calls and Puts\n\nCall options give the holder the right to buy an asset, while put options give the right to sell an asset at the strike price.\n\n## Understanding Option Greeks\n\nDelta, gamma, theta, and vega are metrics that help traders understand how option prices might change under different conditions.\n\n## Covered Calls\n\nA beginner-friendly strategy where you sell call options on stocks you already own to generate income.\n\n## Cash-Secured Puts\n\nSelling put options with enough cash to cover the potential purchase of shares if the option is exercised.\n\n## Vertical Spreads\n\nBuying and selling options of the same type and expiration but different strike prices to limit risk and potential profit.",
		Status:      model.PostStatusRejected,
		AuthorID:    "user_123",
	},
	{
		ID:          "post_9",
		Slug:        "futures-trading-guide",
		Title:       "Futures Trading: A Comprehensive Guide for Intermediate Traders",
		Date:        "2023-12-01",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Explore the world of futures trading and learn how to trade these derivative contracts effectively.",
		Category:    "FUTURES",
		ReadingTime: "10 MIN READ",
		Content:     "# Futures Trading: A Comprehensive Guide for Intermediate Traders\n\nFutures contracts are standardized agreements to buy or sell an asset at a predetermined price at a specified time in the future.\n\n## Understanding Futures Markets\n\nFutures markets exist for commodities, currencies, stock indices, and even individual stocks, allowing traders to speculate or hedge.\n\n## Contract Specifications\n\nEach futures contract has specific details regarding size, delivery date, tick size, and margin requirements that traders must understand.\n\n## Contango and Backwardation\n\nThese market conditions describe the relationship between futures prices and spot prices, which can impact trading strategies.\n\n## Rolling Contracts\n\nTraders who don't want to take delivery must close or roll their positions before expiration, which requires specific timing and execution.\n\n## Risk Management in Futures\n\nDue to the leverage involved, futures trading requires strict risk management protocols to protect capital.",
		Status:      model.PostStatusPending,
		AuthorID:    "user_456",
	},
	{
		ID:          "post_10",
		Slug:        "algorithmic-trading-basics",
		Title:       "Introduction to Algorithmic Trading: Building Your First Strategy",
		Date:        "2023-12-15",
		CoverImage:  "/placeholder.svg?height=300&width=500",
		Excerpt:     "Learn how to create and implement automated trading strategies using algorithms.",
		Category:    "ALGO TRADING",
		ReadingTime: "12 MIN READ",
		Content:     "# Introduction to Algorithmic Trading: Building Your First Strategy\n\nAlgorithmic trading uses computer programs to follow a defined set of instructions for placing trades to generate profits at a speed and frequency impossible for human traders.\n\n## Types of Algorithmic Strategies\n\nCommon approaches include trend-following, mean reversion, statistical arbitrage, and market making strategies.\n\n## Required Technical Skills\n\nAlgorithmic trading requires programming knowledge (typically Python, R, or C++), statistical analysis skills, and market understanding.\n\n## Backtesting Frameworks\n\nBefore deploying algorithms, traders must test them against historical data to evaluate performance and robustness.\n\n## Execution Infrastructure\n\nSuccessful algorithmic trading requires low-latency connections, proper order execution systems, and reliable data feeds.\n\n## Common Pitfalls\n\nOverfitting, look-ahead bias, and survivorship bias are common issues that can lead to strategies that perform well in backtests but fail in live trading.",
		Status:      model.PostStatusApproved,
		AuthorID:    "user_456",
	},
}

// SeedDemoPosts insert the demo corpus, skipping posts whose slug is
// already taken, so reseeding an existing database is safe.
func (s *Blog) SeedDemoPosts(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var inserted int
	for _, p := range demoPosts {
		exists, err := s.dao.IsSlugExists(ctx, p.Slug)
		if err != nil {
			return errors.Wrapf(err, "check slug `%s`", p.Slug)
		}
		if exists {
			continue
		}

		post := *p
		ts, err := time.Parse("2006-01-02", post.Date)
		if err != nil {
			return errors.Wrapf(err, "parse date `%s`", post.Date)
		}
		post.CreatedAt = ts
		post.ModifiedAt = ts

		if err = s.dao.InsertPost(ctx, &post); err != nil {
			return errors.Wrapf(err, "insert demo post `%s`", post.Slug)
		}
		inserted++
	}

	s.logger.Info("seeded demo posts", zap.Int("n", inserted))
	return nil
}
